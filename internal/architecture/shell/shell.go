package shell

import (
	"fmt"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/highlight"
)

// Shell applies intents to a State and keeps the matching Snapshot current.
// It is not safe for concurrent use; callers serialise intents.
type Shell struct {
	cat      *domain.Catalog
	state    State
	snapshot highlight.Snapshot
	onChange func(State, highlight.Snapshot)
}

type Option func(*Shell)

// WithObserver registers fn to run after every recomputation.
func WithObserver(fn func(State, highlight.Snapshot)) Option {
	return func(s *Shell) { s.onChange = fn }
}

// WithState starts the shell from st instead of NewState.
func WithState(st State) Option {
	return func(s *Shell) { s.state = st }
}

func New(cat *domain.Catalog, opts ...Option) *Shell {
	s := &Shell{cat: cat, state: NewState()}
	for _, opt := range opts {
		opt(s)
	}
	s.apply(s.state)
	return s
}

func (s *Shell) Catalog() *domain.Catalog     { return s.cat }
func (s *Shell) State() State                 { return s.state }
func (s *Shell) Snapshot() highlight.Snapshot { return s.snapshot }

// SelectComponent selects id. Unknown ids are rejected.
func (s *Shell) SelectComponent(id string) error {
	if _, ok := s.cat.Component(id); !ok {
		return fmt.Errorf("select %q: %w", id, domain.ErrComponentNotFound)
	}
	s.apply(s.state.SelectComponent(id))
	return nil
}

func (s *Shell) ClearSelection()          { s.apply(s.state.ClearSelection()) }
func (s *Shell) HoverComponent(id string) { s.apply(s.state.HoverComponent(id)) }
func (s *Shell) SetMode(mode string)      { s.apply(s.state.SetMode(mode)) }
func (s *Shell) SetTab(tab Tab)           { s.apply(s.state.SetTab(tab)) }
func (s *Shell) HoverPhase(id string)     { s.apply(s.state.HoverPhase(id)) }

// SelectedComponent returns the selected component, if any.
func (s *Shell) SelectedComponent() (domain.Component, bool) {
	if s.state.SelectedID == "" {
		return domain.Component{}, false
	}
	return s.cat.Component(s.state.SelectedID)
}

func (s *Shell) apply(next State) {
	s.state = next
	s.snapshot = highlight.Classify(s.cat, next.HighlightInput(s.cat))
	if s.onChange != nil {
		s.onChange(s.state, s.snapshot)
	}
}
