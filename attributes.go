package sigview

// SetAttribute stores value under (id, key).
func (a *App) SetAttribute(id, key, value string) {
	attrs, ok := a.attributes[id]
	if !ok {
		attrs = make(map[string]string)
		a.attributes[id] = attrs
	}

	attrs[key] = value
}

// Attribute returns the value stored under (id, key) and whether there is one.
func (a *App) Attribute(id, key string) (string, bool) {
	attrs, ok := a.attributes[id]
	if !ok {
		return "", false
	}

	v, ok := attrs[key]
	return v, ok
}

func (a *App) HasAttribute(id, key string) bool {
	_, ok := a.Attribute(id, key)
	return ok
}

// SeedAttributes copies every (id, key, value) of attrs into the store.
func (a *App) SeedAttributes(attrs map[string]map[string]string) {
	for id, kv := range attrs {
		for key, value := range kv {
			a.SetAttribute(id, key, value)
		}
	}
}

// Attributes returns the attribute set of an identifiable builder.
func (a *App) Attributes(owner Identifiable) AttributeSet {
	return AttributeSet{app: a, id: owner.ID()}
}

// AttributeSet is the view of the attribute store for one id.
type AttributeSet struct {
	app *App
	id  string
}

func (s AttributeSet) ID() string { return s.id }

func (s AttributeSet) Set(key, value string) { s.app.SetAttribute(s.id, key, value) }

func (s AttributeSet) Get(key string) (string, bool) { return s.app.Attribute(s.id, key) }

func (s AttributeSet) Has(key string) bool { return s.app.HasAttribute(s.id, key) }
