package internal

type Tracker struct {
	currentOwner *Owner // for lifecycle/cleanup tracking
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) CurrentOwner() *Owner {
	return t.currentOwner
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func() error) error {
	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	return fn()
}
