package cli

import (
	"fmt"
	"iter"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/pacing"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

type watchOpts struct {
	strategy   string
	speed      int
	start, end string
	rows, cols int
	seed       int64
}

func (c *CLI) watchCommand() *cobra.Command {
	var opts watchOpts

	cmd := &cobra.Command{
		Use:   "watch [grid-file]",
		Short: "Animate a search in the terminal",
		Long: `Animate a search cell by cell, then reveal the path.

Keys: 1-4 pick dijkstra, astar, bfs or dfs and restart; r restarts;
g carves a new maze; + and - change the speed; q quits.`,
		Example: `  lvmaze watch --strategy astar --speed 80
  lvmaze watch maze.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyGridFlags(cmd, &opts.rows, &opts.cols, &opts.seed)
			if !cmd.Flags().Changed("strategy") {
				opts.strategy = c.Config.Search.Strategy
			}
			if !cmd.Flags().Changed("speed") {
				opts.speed = c.Config.Search.Speed
			}
			return c.runWatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "dijkstra, astar, bfs or dfs (default from config)")
	cmd.Flags().IntVar(&opts.speed, "speed", 0, "animation speed 1..100 (default from config)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as row,col")
	cmd.Flags().StringVar(&opts.end, "end", "", "end cell as row,col")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "rows of a generated maze (default from config)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "columns of a generated maze (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed of a generated maze, 0 for the clock")

	return cmd
}

func (c *CLI) runWatch(cmd *cobra.Command, args []string, opts watchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	strategy, err := search.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	if _, err := pacing.FromSpeed(opts.speed); err != nil {
		return err
	}
	g, err := loadGrid(args, opts.rows, opts.cols, opts.seed)
	if err != nil {
		return err
	}
	if _, _, err := placeEndpoints(g, opts.start, opts.end); err != nil {
		return err
	}

	// the live view owns the terminal; only warnings get through
	quiet := logger.WithPrefix("watch")
	quiet.SetLevel(log.WarnLevel)
	sess, err := session.New(g.Rows(), g.Cols(), session.WithLogger(quiet), session.WithRand(newRand(opts.seed)))
	if err != nil {
		return err
	}
	if err := sess.Load(g); err != nil {
		return err
	}

	m := newWatchModel(sess, strategy, opts.speed)
	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	if fm, ok := final.(*watchModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// =============================================================================
// watchModel - live search animation
// =============================================================================

type phase int

const (
	phaseSearch phase = iota
	phaseReveal
	phaseDone
)

// Tick messages carry the run they belong to so that ticks of a replaced
// run are dropped.
type (
	visitTickMsg struct{ run uuid.UUID }
	pathTickMsg  struct{ run uuid.UUID }
)

type watchModel struct {
	sess     *session.Session
	term     *render.Terminal
	strategy search.Strategy
	speed    int
	pacer    pacing.Pacer

	run   *session.Run
	next  func() (search.Event, bool)
	stop  func()
	phase phase

	view  *grid.Grid
	last  search.Event
	path  search.Path
	shown int
	err   error
}

func newWatchModel(sess *session.Session, strategy search.Strategy, speed int) *watchModel {
	m := &watchModel{
		sess:     sess,
		term:     render.NewTerminal(),
		strategy: strategy,
	}
	m.setSpeed(speed)
	return m
}

func (m *watchModel) setSpeed(speed int) {
	m.speed = min(max(speed, pacing.MinSpeed), pacing.MaxSpeed)
	m.pacer, _ = pacing.FromSpeed(m.speed)
}

func (m *watchModel) Init() tea.Cmd {
	return m.begin()
}

// begin drops the current run and starts a new one with m.strategy.
func (m *watchModel) begin() tea.Cmd {
	m.cancel()
	m.path, m.shown, m.last, m.err = nil, 0, search.Event{}, nil

	run, err := m.sess.Begin(m.strategy)
	if err != nil {
		m.err = err
		m.phase = phaseDone
		m.view = m.sess.Snapshot()
		return nil
	}
	m.run = run
	m.next, m.stop = iter.Pull(run.Events())
	m.phase = phaseSearch
	m.view = m.sess.Snapshot()
	return m.tickVisit()
}

// cancel stops the pull iterator and releases the grid.
func (m *watchModel) cancel() {
	if m.stop != nil {
		m.stop()
		m.stop, m.next = nil, nil
	}
	if m.run != nil {
		m.run.Cancel()
	}
}

func (m *watchModel) tickVisit() tea.Cmd {
	id := m.run.ID
	return tea.Tick(m.pacer.VisitDelay, func(time.Time) tea.Msg { return visitTickMsg{run: id} })
}

func (m *watchModel) tickPath() tea.Cmd {
	id := m.run.ID
	return tea.Tick(m.pacer.PathDelay, func(time.Time) tea.Msg { return pathTickMsg{run: id} })
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case visitTickMsg:
		if m.run == nil || msg.run != m.run.ID || m.phase != phaseSearch {
			return m, nil
		}
		return m, m.step()
	case pathTickMsg:
		if m.run == nil || msg.run != m.run.ID || m.phase != phaseReveal {
			return m, nil
		}
		return m, m.reveal()
	}
	return m, nil
}

// step pulls one event, or finishes the run when the sequence is over.
func (m *watchModel) step() tea.Cmd {
	ev, ok := m.next()
	if ok {
		m.last = ev
		m.view = m.sess.Snapshot()
		return m.tickVisit()
	}

	m.stop()
	m.stop, m.next = nil, nil
	m.path, m.err = m.run.Finish()
	m.view = m.sess.Snapshot()
	// hide the path again so it can be revealed cell by cell
	for _, c := range m.path {
		if cell := m.view.MustAt(c); cell.Kind == grid.Path {
			cell.Kind = grid.Visited
		}
	}
	m.phase = phaseReveal
	return m.tickPath()
}

// reveal marks the next path cell.
func (m *watchModel) reveal() tea.Cmd {
	if m.shown >= len(m.path) {
		m.phase = phaseDone
		return nil
	}
	if cell := m.view.MustAt(m.path[m.shown]); !cell.Kind.Endpoint() {
		cell.Kind = grid.Path
	}
	m.shown++
	return m.tickPath()
}

func (m *watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.cancel()
		return m, tea.Quit
	case "r":
		return m, m.begin()
	case "g":
		m.cancel()
		if err := m.regenerate(); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.begin()
	case "1", "2", "3", "4":
		m.strategy = search.Strategies()[key[0]-'1']
		return m, m.begin()
	case "+", "=":
		m.setSpeed(m.speed + 10)
	case "-", "_":
		m.setSpeed(m.speed - 10)
	}
	return m, nil
}

// regenerate carves a new maze and places the endpoints on its first and
// last open cells.
func (m *watchModel) regenerate() error {
	if err := m.sess.Generate(); err != nil {
		return err
	}
	snap := m.sess.Snapshot()
	start, ok := firstOpen(snap)
	if !ok {
		return fmt.Errorf("maze has no open cell")
	}
	end, _ := lastOpen(snap)
	if _, err := m.sess.Click(start); err != nil {
		return err
	}
	_, err := m.sess.Click(end)
	return err
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("lvmaze"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  %s · speed %d", m.strategy, m.speed)))
	b.WriteString("\n\n")
	if m.view != nil {
		b.WriteString(m.term.Render(m.view))
		b.WriteString("\n")
	}
	b.WriteString(m.term.Legend())
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(styleDim.Render("1-4 strategy  r restart  g new maze  +/- speed  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *watchModel) status() string {
	switch {
	case m.err != nil:
		return styleIconError.Render(iconError) + " " + m.err.Error()
	case m.phase == phaseSearch:
		return fmt.Sprintf("step %s · cell %v · distance %s · frontier %s",
			styleNumber.Render(fmt.Sprint(m.last.Step)), m.last.Cell.Coord(),
			styleNumber.Render(fmt.Sprint(m.last.Cell.Distance)), styleNumber.Render(fmt.Sprint(m.last.Frontier)))
	case len(m.path) == 0:
		return styleIconError.Render(iconError) + fmt.Sprintf(" no path · %d visited", m.run.Steps())
	default:
		return styleIconSuccess.Render(iconSuccess) + fmt.Sprintf(" path %d moves · %d visited", m.path.Moves(), m.run.Steps())
	}
}
