package report

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/shuv1824/envhealth/internal/chart"
)

// ErrStaleResult is returned when a newer analysis started before this one
// finished. The stale report is discarded.
var ErrStaleResult = errors.New("analysis superseded by a newer request")

// ErrNoReport is returned when nothing has been analysed yet.
var ErrNoReport = errors.New("no report available")

// Session owns the current report and its charts. Each Analyze call starts a
// new generation and cancels the previous in-flight one; only the latest
// generation may install its result.
type Session struct {
	service *Service
	board   *chart.Board

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *Report
}

// NewSession creates a session with an empty chart board.
func NewSession(service *Service) *Session {
	return &Session{
		service: service,
		board:   chart.NewBoard(),
	}
}

// Analyze builds a report for city and, if no newer analysis has started in
// the meantime, replaces the current report and charts with it. On failure
// the session keeps its previous state. An empty city is rejected without
// touching the analysis in flight.
func (s *Session) Analyze(ctx context.Context, city string) (*Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	ctx, gen := s.begin(ctx)
	defer s.finish(gen)

	r, err := s.service.Build(ctx, city)
	if err != nil {
		if !s.isCurrent(gen) {
			return nil, ErrStaleResult
		}
		return nil, err
	}

	if err := s.commit(gen, r); err != nil {
		slog.Info("discarding stale report", "city", city, "report_id", r.ID)
		return nil, err
	}
	return r, nil
}

func (s *Session) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.cancel = cancel
	return ctx, s.generation
}

// finish releases the generation's context.
func (s *Session) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == gen && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) isCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation == gen
}

func (s *Session) commit(gen uint64, r *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return ErrStaleResult
	}
	s.board.ReplaceAll(r.Charts)
	s.current = r
	return nil
}

// Current returns the latest committed report.
func (s *Session) Current() (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoReport
	}
	return s.current, nil
}

// Chart returns the live handle for slot.
func (s *Session) Chart(slot chart.Slot) (*chart.Handle, error) {
	return s.board.Get(slot)
}

// ChartFor returns the handle for slot only if reportID is still the current
// report. The check and the lookup happen under one lock so a concurrent
// commit cannot pair the old id with a new chart.
func (s *Session) ChartFor(reportID string, slot chart.Slot) (*chart.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != reportID {
		return nil, ErrStaleResult
	}
	return s.board.Get(slot)
}

// Enlarge opens the enlarged view of slot.
func (s *Session) Enlarge(slot chart.Slot) (*chart.Handle, error) {
	return s.board.Enlarge(slot)
}

// Enlarged returns the open enlarged view.
func (s *Session) Enlarged() (*chart.Handle, error) {
	return s.board.Enlarged()
}

// CloseEnlarged closes the enlarged view.
func (s *Session) CloseEnlarged() {
	s.board.CloseEnlarged()
}

// Close cancels any in-flight analysis and disposes every chart.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.board.Dispose()
	s.current = nil
}
