// Package summarize produces short AI-written analyses of catalog
// components. Live providers degrade to a fixed "unavailable" payload
// instead of failing; without a credential a deterministic mock is used.
package summarize

import (
	"context"
	"errors"
	"strings"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
)

// Analysis is the payload shown in the insight panel.
type Analysis struct {
	Summary          string   `json:"summary"`
	Importance       string   `json:"importance"`
	BusinessValue    string   `json:"businessValue"`
	TechnicalDetails []string `json:"technicalDetails"`
}

// Complete reports whether every field carries content.
func (a Analysis) Complete() bool {
	if strings.TrimSpace(a.Summary) == "" || strings.TrimSpace(a.Importance) == "" || strings.TrimSpace(a.BusinessValue) == "" {
		return false
	}
	if len(a.TechnicalDetails) == 0 {
		return false
	}
	for _, d := range a.TechnicalDetails {
		if strings.TrimSpace(d) == "" {
			return false
		}
	}
	return true
}

// Unavailable is returned in place of an error by live providers.
func Unavailable() Analysis {
	return Analysis{
		Summary:          "Advanced analysis unavailable.",
		Importance:       "System requires API connectivity.",
		BusinessValue:    "Check configuration.",
		TechnicalDetails: []string{"Analysis service offline."},
	}
}

// IsUnavailable reports whether a is the Unavailable payload.
func IsUnavailable(a Analysis) bool {
	u := Unavailable()
	return a.Summary == u.Summary && a.Importance == u.Importance && a.BusinessValue == u.BusinessValue
}

type Summarizer interface {
	Summarize(ctx context.Context, c domain.Component) (Analysis, error)
	// Name identifies the provider in logs, metrics and health output.
	Name() string
}

var (
	ErrEmptyResponse      = errors.New("summarizer returned no content")
	ErrIncompleteAnalysis = errors.New("summarizer returned an incomplete analysis")
)
