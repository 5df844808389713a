package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/server"
	"github.com/katalvlaran/lvmaze/session"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		rows, cols int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a session over HTTP",
		Long: `Serve one session over HTTP: place endpoints and walls with clicks,
carve mazes and stream searches as NDJSON.

  GET  /grid                      POST /maze
  PUT  /grid                      POST /clear
  POST /cells/{row}/{col}/click   POST /search?strategy=astar&speed=50`,
		Example: `  lvmaze serve --addr :9000
  curl -N -X POST 'localhost:8080/search?strategy=bfs'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyGridFlags(cmd, &rows, &cols, &seed)
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			logger := loggerFromContext(cmd.Context())

			sess, err := session.New(rows, cols, session.WithLogger(logger), session.WithRand(newRand(seed)))
			if err != nil {
				return err
			}
			return server.New(sess, server.WithLogger(logger)).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "maze seed, 0 for the clock (default from config)")

	return cmd
}
