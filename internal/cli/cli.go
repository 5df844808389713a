package cli

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/internal/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level, with the default configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Config: config.Default()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
// Before any subcommand runs, the configuration file is loaded and the log
// level applied; --verbose forces debug.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lvmaze",
		Short:        "lvmaze carves grid mazes and animates path searches",
		Long:         `lvmaze generates perfect mazes on a grid and searches them with Dijkstra, A*, BFS or DFS, printing or animating the cells each strategy explores and the path it finds.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			level := cfg.Level()
			if c.verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.strategiesCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// =============================================================================
// Shared helpers
// =============================================================================

// newRand seeds from seed, or from the clock when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// parseCoord parses "row,col".
func parseCoord(s string) (grid.Coord, error) {
	r, col, ok := strings.Cut(s, ",")
	if !ok {
		return grid.NoCoord, fmt.Errorf("invalid cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.NoCoord, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	cc, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return grid.NoCoord, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return grid.At(row, cc), nil
}

// firstOpen and lastOpen return the first and last passable cells in
// row-major order, the default endpoints on a generated maze.
func firstOpen(g *grid.Grid) (grid.Coord, bool) {
	for c := range g.Cells() {
		if c.Kind.Passable() {
			return c.Coord(), true
		}
	}
	return grid.NoCoord, false
}

func lastOpen(g *grid.Grid) (grid.Coord, bool) {
	for row := g.Rows() - 1; row >= 0; row-- {
		for col := g.Cols() - 1; col >= 0; col-- {
			if k, _ := g.Kind(grid.At(row, col)); k.Passable() {
				return grid.At(row, col), true
			}
		}
	}
	return grid.NoCoord, false
}

// placeEndpoints resolves Start and End on g: explicit flags first, then
// S and E cells already in g, then the first and last open cells. The
// chosen cells are marked Start and End.
func placeEndpoints(g *grid.Grid, startFlag, endFlag string) (grid.Coord, grid.Coord, error) {
	resolve := func(flag string, kind grid.Kind, fallback func(*grid.Grid) (grid.Coord, bool)) (grid.Coord, error) {
		if flag != "" {
			c, err := parseCoord(flag)
			if err != nil {
				return grid.NoCoord, err
			}
			if !g.InBounds(c) {
				return grid.NoCoord, fmt.Errorf("%s %v: %w", kind, c, grid.ErrOutOfRange)
			}
			g.Replace(kind, grid.Empty)
			return c, g.SetKind(c, kind)
		}
		if c, ok := g.Find(kind); ok {
			return c, nil
		}
		c, ok := fallback(g)
		if !ok {
			return grid.NoCoord, fmt.Errorf("no open cell for %s", kind)
		}
		return c, g.SetKind(c, kind)
	}

	start, err := resolve(startFlag, grid.Start, firstOpen)
	if err != nil {
		return grid.NoCoord, grid.NoCoord, err
	}
	end, err := resolve(endFlag, grid.End, lastOpen)
	if err != nil {
		return grid.NoCoord, grid.NoCoord, err
	}
	if start == end {
		return grid.NoCoord, grid.NoCoord, fmt.Errorf("start and end are the same cell %v", start)
	}
	return start, end, nil
}
