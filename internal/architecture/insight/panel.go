// Package insight tracks the detail panel of the selected component and
// its on-demand analysis.
package insight

import (
	"errors"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

const FailureMessage = "Analysis failed. Close and reselect the component to try again."

var (
	ErrNoComponent   = errors.New("no component selected")
	ErrAlreadyLoaded = errors.New("analysis already requested for this selection")
)

// Panel is the analysis state for one selection. Generation increases on
// every Reset so that results from an older selection can be recognised.
type Panel struct {
	ComponentID string              `json:"component_id,omitempty"`
	Generation  uint64              `json:"generation"`
	Status      Status              `json:"status"`
	Analysis    *summarize.Analysis `json:"analysis,omitempty"`
	Error       string              `json:"error,omitempty"`
}

func NewPanel() Panel {
	return Panel{Status: StatusIdle}
}

// Reset starts a new selection; "" hides the panel.
func (p *Panel) Reset(componentID string) {
	p.ComponentID = componentID
	p.Generation++
	p.Status = StatusIdle
	p.Analysis = nil
	p.Error = ""
}

// Begin moves an idle panel to loading and returns the generation the
// result must carry. Each selection allows exactly one request.
func (p *Panel) Begin() (uint64, error) {
	if p.ComponentID == "" {
		return 0, ErrNoComponent
	}
	if p.Status != StatusIdle {
		return 0, ErrAlreadyLoaded
	}
	p.Status = StatusLoading
	return p.Generation, nil
}

// Complete stores a result. It reports false and changes nothing when the
// result belongs to another generation or no request is in flight.
func (p *Panel) Complete(gen uint64, a summarize.Analysis) bool {
	if gen != p.Generation || p.Status != StatusLoading {
		return false
	}
	p.Status = StatusReady
	p.Analysis = &a
	return true
}

// Fail records a rejected request. Failed is terminal for the selection.
func (p *Panel) Fail(gen uint64, err error) bool {
	if gen != p.Generation || p.Status != StatusLoading {
		return false
	}
	p.Status = StatusFailed
	p.Error = FailureMessage
	if err != nil {
		p.Error = FailureMessage + " (" + err.Error() + ")"
	}
	return true
}

func (p Panel) Visible() bool { return p.ComponentID != "" }
