// Package config reads the optional sigview.yaml of an application.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/AnatoleLucet/sigview"
	"github.com/AnatoleLucet/sigview/native"
)

const FileName = "sigview.yaml"

// Config represents the optional sigview.yaml configuration.
type Config struct {
	App        AppConfig                    `yaml:"app"`
	Root       RootConfig                   `yaml:"root"`
	Log        LogConfig                    `yaml:"log"`
	Attributes map[string]map[string]string `yaml:"attributes,omitempty"`
}

type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	Home string `yaml:"home,omitempty"`
}

// RootConfig styles the root container built around the home screen.
type RootConfig struct {
	Width      int    `yaml:"width,omitempty"`
	Background string `yaml:"background,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	AppName    string
	Home       string
	RootWidth  int
	Background string
	LogLevel   slog.Level
	Attributes map[string]map[string]string
}

// LoadOptional reads sigview.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", FileName)
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", FileName)
	}

	return &cfg, nil
}

// Resolve loads sigview.yaml (if present) from dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	return cfg.Resolve(filepath.Base(dir))
}

// Resolve fills in defaults. defaultName is used when no app name is set.
func (c *Config) Resolve(defaultName string) (*Resolved, error) {
	r := &Resolved{
		AppName:    strings.TrimSpace(c.App.Name),
		Home:       strings.TrimSpace(c.App.Home),
		RootWidth:  c.Root.Width,
		Background: strings.TrimSpace(c.Root.Background),
		Attributes: c.Attributes,
	}

	if r.AppName == "" {
		r.AppName = defaultName
	}
	if r.Home == "" {
		r.Home = "home"
	}
	if r.RootWidth <= 0 {
		r.RootWidth = 1000
	}
	if r.Background == "" {
		r.Background = "white"
	}
	if _, err := sigview.ParseColor(r.Background); err != nil {
		return nil, errors.Wrap(err, "root.background")
	}

	if level := strings.TrimSpace(c.Log.Level); level != "" {
		if err := r.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrap(err, "log.level")
		}
	}

	return r, nil
}

// Logger returns a text logger writing to w at the configured level.
func (r *Resolved) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: r.LogLevel})).
		With("app", r.AppName)
}

// Options turns the resolved values into App options, logging to w.
func (r *Resolved) Options(w io.Writer) []sigview.Option {
	return []sigview.Option{
		sigview.WithLogger(r.Logger(w)),
		sigview.WithContentWidth(r.RootWidth),
		sigview.WithBackground(r.Background),
	}
}

// NewApp creates an App on platform configured from r, with the configured attributes seeded.
func (r *Resolved) NewApp(platform native.Platform, w io.Writer) *sigview.App {
	app := sigview.NewApp(platform, r.Options(w)...)
	app.SeedAttributes(r.Attributes)
	return app
}
