package domain

import "strings"

type CloudProvider string

const (
	ProviderAWS      CloudProvider = "AWS"
	ProviderAzure    CloudProvider = "AZURE"
	ProviderGCP      CloudProvider = "GCP"
	ProviderCore     CloudProvider = "CORE"
	ProviderExternal CloudProvider = "EXTERNAL"
)

type SecurityDomain string

const (
	DomainIdentity        SecurityDomain = "Identity & Access"
	DomainNetwork         SecurityDomain = "Network Security"
	DomainCompliance      SecurityDomain = "Compliance & Governance"
	DomainThreatDetection SecurityDomain = "Threat Detection"
	DomainDataProtection  SecurityDomain = "Data Protection"
	DomainEndpoint        SecurityDomain = "Endpoint Security"
)

type FlowType string

const (
	FlowTraffic FlowType = "TRAFFIC"
	FlowLogging FlowType = "LOGGING"
	FlowAttack  FlowType = "ATTACK"
)

type Severity string

const (
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// View modes. Threat modes are named after the ThreatVector id, which always
// carries the ThreatModePrefix.
const (
	ModeDefault  = "default"
	ModeDataflow = "dataflow"
	ModeLogging  = "logging"

	ThreatModePrefix = "threat-"
)

// IsThreatMode reports whether mode selects a threat overlay.
func IsThreatMode(mode string) bool {
	return strings.HasPrefix(mode, ThreatModePrefix)
}
