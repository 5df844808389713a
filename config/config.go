// Package config loads the lvmaze configuration from TOML.
//
// Every field has a default (see Default); a file only needs the keys it
// changes. Command-line flags override file values in the CLI.
//
//	[grid]
//	rows = 25
//	cols = 40
//
//	[search]
//	strategy = "dijkstra"
//	speed = 50
//
//	[maze]
//	seed = 0        # 0 seeds from the clock
//
//	[log]
//	level = "info"
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvmaze/pacing"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// ErrInvalid is wrapped by every validation and decoding failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete configuration.
type Config struct {
	Grid   Grid   `toml:"grid"`
	Search Search `toml:"search"`
	Maze   Maze   `toml:"maze"`
	Log    Log    `toml:"log"`
	Server Server `toml:"server"`
}

// Grid sets the grid dimensions.
type Grid struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// Search selects the strategy and animation speed.
type Search struct {
	Strategy string `toml:"strategy"`
	Speed    int    `toml:"speed"`
}

// Maze seeds generation; 0 means time-seeded.
type Maze struct {
	Seed int64 `toml:"seed"`
}

// Log sets the log level: debug, info, warn or error.
type Log struct {
	Level string `toml:"level"`
}

// Server sets the HTTP listen address.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:   Grid{Rows: session.DefaultRows, Cols: session.DefaultCols},
		Search: Search{Strategy: search.Dijkstra.String(), Speed: pacing.DefaultSpeed},
		Log:    Log{Level: "info"},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(string(data), cfg)
}

// Parse decodes TOML text over base and validates the result. Unknown keys
// are rejected.
func Parse(text string, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem wrapped in
// ErrInvalid.
func (c Config) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: grid must be at least 1×1, got %d×%d", ErrInvalid, c.Grid.Rows, c.Grid.Cols)
	}
	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := pacing.FromSpeed(c.Search.Speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalid)
	}
	return nil
}

// Strategy returns the parsed strategy, Dijkstra if unparsable.
func (c Config) Strategy() search.Strategy {
	s, err := search.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return search.Dijkstra
	}
	return s
}

// Level returns the parsed log level, info if unparsable.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
