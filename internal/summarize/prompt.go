package summarize

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
)

const promptTemplate = `Act as a Principal Security Architect.
We are analyzing the component "%s" (%s - %s) in a high-security multi-cloud banking environment.

Existing Compliance Context: %s.
Known Mitigation: %s.

Provide an ADVANCED deep-dive analysis JSON:
- summary: Technical architectural function (1 sentence).
- importance: Why this specific component is non-negotiable for zero-trust.
- businessValue: Executive-level ROI statement (risk vs cost).
- technicalDetails: 3 very specific, advanced configuration or integration capabilities (e.g., "Supports custom KQL parsers", "VPC Traffic Mirroring target").
`

// Prompt renders the analysis request for c.
func Prompt(c domain.Component) string {
	return fmt.Sprintf(promptTemplate,
		c.Name, c.Provider, c.Domain,
		joinOr(c.Compliance, ", ", "General Best Practices"),
		joinOr(c.Mitigates, ", ", "General Defense"),
	)
}

func joinOr(items []string, sep, fallback string) string {
	if s := strings.Join(items, sep); s != "" {
		return s
	}
	return fallback
}
