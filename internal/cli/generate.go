package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
)

type generateOpts struct {
	rows, cols int
	seed       int64
	out        string
	plain      bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a perfect maze",
		Long: `Carve a perfect maze into an all-wall grid, starting at cell (1,1).

Odd dimensions give a maze whose right and bottom edges are closed walls.
The result is printed in colour, or as text with --plain; --out saves the
text form for "lvmaze solve".`,
		Example: `  lvmaze generate --rows 21 --cols 41 --seed 7
  lvmaze generate --out maze.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyGridFlags(cmd, &opts.rows, &opts.cols, &opts.seed)
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed, 0 for the clock (default from config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the maze in text form to this file")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print uncoloured text")

	return cmd
}

// applyGridFlags fills dimensions and seed left unset on the command line
// from the configuration.
func (c *CLI) applyGridFlags(cmd *cobra.Command, rows, cols *int, seed *int64) {
	if !cmd.Flags().Changed("rows") {
		*rows = c.Config.Grid.Rows
	}
	if !cmd.Flags().Changed("cols") {
		*cols = c.Config.Grid.Cols
	}
	if !cmd.Flags().Changed("seed") {
		*seed = c.Config.Maze.Seed
	}
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	g, err := maze.Generate(opts.rows, opts.cols, maze.WithRand(newRand(opts.seed)))
	if err != nil {
		return err
	}
	prog.done("maze generated", "rows", opts.rows, "cols", opts.cols)

	w := cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.out, err)
		}
		if err := g.Format(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		printSuccess(w, "Maze %d×%d written", opts.rows, opts.cols)
		printFile(w, opts.out)
		return nil
	}

	if opts.plain {
		fmt.Fprint(w, render.Plain(g))
	} else {
		fmt.Fprintln(w, render.NewTerminal().Render(g))
	}
	printStats(w, fmt.Sprintf("%d×%d", opts.rows, opts.cols), fmt.Sprintf("%d open", g.Passable()))
	return nil
}
