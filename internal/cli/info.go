package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/internal/buildinfo"
	"github.com/katalvlaran/lvmaze/search"
)

var strategyNotes = map[search.Strategy]string{
	search.Dijkstra: "shortest path; same order as bfs on unit costs",
	search.AStar:    "shortest path guided by Manhattan distance",
	search.BFS:      "shortest path, explores in rings",
	search.DFS:      "any path, follows one branch to its end",
}

func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.Config.Write(cmd.OutOrStdout())
		},
	}
}

func (c *CLI) strategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the search strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			rows := make([][]string, 0, len(search.Strategies()))
			for _, st := range search.Strategies() {
				rows = append(rows, []string{st.String(), st.Policy().String(), strategyNotes[st]})
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers("Strategy", "Frontier", "Notes").
				Rows(rows...).
				StyleFunc(func(row, _ int) lipgloss.Style {
					if row == -1 { // header
						return styleHeader.Padding(0, 1)
					}
					return styleValue.Padding(0, 1)
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printKeyValue(cmd.OutOrStdout(), "lvmaze", buildinfo.Version)
			fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render(buildinfo.String()))
		},
	}
}
