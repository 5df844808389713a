package server

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/pacing"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// maxGridBody caps the size of a PUT /grid body.
const maxGridBody = 1 << 20

// point is a [row, col] pair on the wire.
type point [2]int

func toPoint(c grid.Coord) point { return point{c.Row, c.Col} }

type cellJSON struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Kind     string `json:"kind"`
	Distance *int   `json:"distance,omitempty"`
}

type gridJSON struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Start *point     `json:"start"`
	End   *point     `json:"end"`
	Busy  bool       `json:"busy"`
	Text  []string   `json:"text"`
	Cells []cellJSON `json:"cells"`
}

type clickJSON struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Kind string `json:"kind"`
}

// visitRecord is one NDJSON line per settled cell.
type visitRecord struct {
	Type     string `json:"type"`
	Step     int    `json:"step"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Distance int    `json:"distance"`
	Frontier int    `json:"frontier"`
}

// pathRecord is one NDJSON line per path cell, streamed after the visits.
type pathRecord struct {
	Type string `json:"type"`
	Step int    `json:"step"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// resultRecord is the last NDJSON line of a search.
type resultRecord struct {
	Type     string  `json:"type"`
	Run      string  `json:"run"`
	Strategy string  `json:"strategy"`
	Found    bool    `json:"found"`
	Steps    int     `json:"steps"`
	Path     []point `json:"path"`
	Error    string  `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.gridView())
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	g, err := grid.Parse(http.MaxBytesReader(w, r.Body, maxGridBody))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.sess.Load(g); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.gridView())
}

func (s *Server) handleMaze(w http.ResponseWriter, _ *http.Request) {
	if err := s.sess.Generate(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.gridView())
}

func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	if err := s.sess.Clear(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.gridView())
}

func (s *Server) handleClearSearch(w http.ResponseWriter, _ *http.Request) {
	if err := s.sess.ClearSearch(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.gridView())
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	row, errRow := strconv.Atoi(chi.URLParam(r, "row"))
	col, errCol := strconv.Atoi(chi.URLParam(r, "col"))
	if errRow != nil || errCol != nil {
		s.writeError(w, fmt.Errorf("%w: %q,%q", grid.ErrOutOfRange, chi.URLParam(r, "row"), chi.URLParam(r, "col")))
		return
	}
	k, err := s.sess.Click(grid.At(row, col))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clickJSON{Row: row, Col: col, Kind: k.String()})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	strategy := search.Dijkstra
	if name := q.Get("strategy"); name != "" {
		st, err := search.ParseStrategy(name)
		if err != nil {
			s.writeError(w, err)
			return
		}
		strategy = st
	}

	var pacer pacing.Pacer
	if v := q.Get("speed"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, fmt.Errorf("%w: %q", pacing.ErrSpeed, v))
			return
		}
		if pacer, err = pacing.FromSpeed(n); err != nil {
			s.writeError(w, err)
			return
		}
	}

	ctx := r.Context()
	run, err := s.sess.Begin(strategy, search.WithContext(ctx))
	if err != nil {
		s.writeError(w, err)
		return
	}
	defer run.Cancel()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("X-Run-ID", run.ID.String())
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	for ev := range pacer.Visits(ctx, run.Events()) {
		rec := visitRecord{
			Type:     "visit",
			Step:     ev.Step,
			Row:      ev.Cell.Row,
			Col:      ev.Cell.Col,
			Distance: ev.Cell.Distance,
			Frontier: ev.Frontier,
		}
		if err := enc.Encode(rec); err != nil {
			s.logger.Debug("stream closed", "run", run.ID, "err", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	path, err := run.Finish()
	if err == nil {
		i := 0
		for c := range pacer.Path(ctx, path) {
			i++
			if err := enc.Encode(pathRecord{Type: "path", Step: i, Row: c.Row, Col: c.Col}); err != nil {
				s.logger.Debug("stream closed", "run", run.ID, "err", err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
	}

	res := resultRecord{
		Type:     "result",
		Run:      run.ID.String(),
		Strategy: strategy.String(),
		Found:    len(path) > 0,
		Steps:    run.Steps(),
		Path:     make([]point, 0, len(path)),
	}
	for _, c := range path {
		res.Path = append(res.Path, toPoint(c))
	}
	if err != nil {
		res.Error = err.Error()
	}
	_ = enc.Encode(res)
}

// gridView snapshots the session into its wire form.
func (s *Server) gridView() gridJSON {
	g := s.sess.Snapshot()
	v := gridJSON{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Busy:  s.sess.Busy(),
		Text:  make([]string, 0, g.Rows()),
		Cells: make([]cellJSON, 0, g.Len()),
	}
	if c, ok := s.sess.Start(); ok {
		p := toPoint(c)
		v.Start = &p
	}
	if c, ok := s.sess.End(); ok {
		p := toPoint(c)
		v.End = &p
	}

	row := make([]rune, 0, g.Cols())
	for c := range g.Cells() {
		cj := cellJSON{Row: c.Row, Col: c.Col, Kind: c.Kind.String()}
		if c.Reached() {
			d := c.Distance
			cj.Distance = &d
		}
		v.Cells = append(v.Cells, cj)

		row = append(row, c.Kind.Rune())
		if c.Col == g.Cols()-1 {
			v.Text = append(v.Text, string(row))
			row = row[:0]
		}
	}
	return v
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, session.ErrNoEndpoints):
		return http.StatusUnprocessableEntity
	case errors.Is(err, grid.ErrOutOfRange),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrBadCell),
		errors.Is(err, search.ErrInvalidStrategy),
		errors.Is(err, pacing.ErrSpeed),
		errors.Is(err, session.ErrAmbiguous),
		errors.Is(err, bufio.ErrTooLong):
		return http.StatusBadRequest
	}
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
