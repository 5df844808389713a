package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

type solveOpts struct {
	strategy   string
	start, end string
	rows, cols int
	seed       int64
	dot, svg   string
	plain      bool
	compare    bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Search a grid and print the explored cells and the path",
		Long: `Search a grid for a path from Start to End.

The grid is read from a text file ('#' wall, '.' empty, 'S' start, 'E' end)
or, without a file, carved as a fresh maze. Endpoints come from --start and
--end ("row,col"), then from S and E cells, then from the first and last
open cells.

--dot and --svg export the search tree with the path highlighted.
--compare runs every strategy on the same grid and prints a table.`,
		Example: `  lvmaze solve maze.txt --strategy astar
  lvmaze solve --seed 3 --strategy dfs --svg tree.svg
  lvmaze solve maze.txt --compare`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyGridFlags(cmd, &opts.rows, &opts.cols, &opts.seed)
			if !cmd.Flags().Changed("strategy") {
				opts.strategy = c.Config.Search.Strategy
			}
			return c.runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "dijkstra, astar, bfs or dfs (default from config)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as row,col")
	cmd.Flags().StringVar(&opts.end, "end", "", "end cell as row,col")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "rows of a generated maze (default from config)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "columns of a generated maze (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed of a generated maze, 0 for the clock")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the search tree as DOT to this file")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the search tree as SVG to this file")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print uncoloured text")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "run every strategy and compare")

	return cmd
}

// loadGrid reads args[0] or generates a maze.
func loadGrid(args []string, rows, cols int, seed int64) (*grid.Grid, error) {
	if len(args) == 0 {
		return maze.Generate(rows, cols, maze.WithRand(newRand(seed)))
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args[0], err)
	}
	return g, nil
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	strategy, err := search.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	g, err := loadGrid(args, opts.rows, opts.cols, opts.seed)
	if err != nil {
		return err
	}
	start, end, err := placeEndpoints(g, opts.start, opts.end)
	if err != nil {
		return err
	}
	logger.Debug("endpoints", "start", start, "end", end)

	sess, err := session.New(g.Rows(), g.Cols(), session.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := sess.Load(g); err != nil {
		return err
	}

	if opts.compare {
		return compareStrategies(cmd, sess)
	}

	run, err := sess.Begin(strategy, search.WithContext(ctx))
	if err != nil {
		return err
	}
	path, err := run.Finish()
	if err != nil {
		return err
	}
	out := sess.Snapshot()

	if opts.plain {
		fmt.Fprint(w, render.Plain(out))
	} else {
		term := render.NewTerminal()
		fmt.Fprintln(w, term.Render(out))
		fmt.Fprintln(w, term.Legend())
	}

	if len(path) == 0 {
		printError(w, "No path from %v to %v (%s)", start, end, strategy)
	} else {
		printSuccess(w, "Path from %v to %v (%s)", start, end, strategy)
	}
	printStats(w, fmt.Sprintf("%d visited", run.Steps()), fmt.Sprintf("%d moves", path.Moves()))

	if opts.dot != "" || opts.svg != "" {
		if err := exportTree(cmd, out, path, opts.dot, opts.svg); err != nil {
			return err
		}
	}
	return nil
}

func exportTree(cmd *cobra.Command, g *grid.Grid, path search.Path, dotPath, svgPath string) error {
	w := cmd.OutOrStdout()
	dot := render.TreeDOT(g, path)
	if dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
			return err
		}
		printFile(w, dotPath)
	}
	if svgPath != "" {
		svg, err := render.SVG(cmd.Context(), dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
			return err
		}
		printFile(w, svgPath)
	}
	return nil
}

// compareStrategies runs every strategy on the session grid and prints
// visited and path counts side by side.
func compareStrategies(cmd *cobra.Command, sess *session.Session) error {
	rows := make([][]string, 0, len(search.Strategies()))
	for _, st := range search.Strategies() {
		run, err := sess.Begin(st, search.WithContext(cmd.Context()))
		if err != nil {
			return err
		}
		path, err := run.Finish()
		if err != nil {
			return err
		}
		moves := "-"
		if len(path) > 0 {
			moves = strconv.Itoa(path.Moves())
		}
		rows = append(rows, []string{st.String(), st.Policy().String(), strconv.Itoa(run.Steps()), moves})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Strategy", "Frontier", "Visited", "Moves").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return styleHeader.Padding(0, 1)
			}
			if col >= 2 {
				return styleNumber.Padding(0, 1).Align(lipgloss.Right)
			}
			return styleValue.Padding(0, 1)
		})
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
