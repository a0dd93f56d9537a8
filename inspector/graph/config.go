package graph

import (
	"io"
	"log/slog"
)

// Markers holds the attribute and type names that drive classification
type Markers struct {
	ExposedBlock []string `yaml:"exposedBlock"` // impl block attributes marking the contract surface
	Init         []string `yaml:"init"`
	Payable      []string `yaml:"payable"`
	Private      []string `yaml:"private"`
	EventType    string   `yaml:"eventType"`
}

// Config controls how sources are scanned
type Config struct {
	SkipTests bool    `yaml:"skipTests"`
	Workers   int     `yaml:"workers"` // files scanned in parallel, 1 scans sequentially
	Markers   Markers `yaml:"markers"`

	Logger *slog.Logger `yaml:"-"`
}

func DefaultMarkers() Markers {
	return Markers{
		ExposedBlock: []string{"near_bindgen", "near"},
		Init:         []string{"init"},
		Payable:      []string{"payable"},
		Private:      []string{"private"},
		EventType:    "NearEvent",
	}
}

func DefaultConfig() *Config {
	return &Config{
		SkipTests: true,
		Workers:   1,
		Markers:   DefaultMarkers(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Init fills in unset values with defaults
func (c *Config) Init() {
	defaults := DefaultMarkers()
	if len(c.Markers.ExposedBlock) == 0 {
		c.Markers.ExposedBlock = defaults.ExposedBlock
	}
	if len(c.Markers.Init) == 0 {
		c.Markers.Init = defaults.Init
	}
	if len(c.Markers.Payable) == 0 {
		c.Markers.Payable = defaults.Payable
	}
	if len(c.Markers.Private) == 0 {
		c.Markers.Private = defaults.Private
	}
	if c.Markers.EventType == "" {
		c.Markers.EventType = defaults.EventType
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
}
