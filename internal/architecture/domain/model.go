package domain

import "slices"

type DataCapture struct {
	Source    string `json:"source" yaml:"source" validate:"required"`
	Type      string `json:"type" yaml:"type" validate:"required"`
	Mechanism string `json:"mechanism" yaml:"mechanism" validate:"required"`
}

// Component is a node of the diagram: a security control or an actor.
type Component struct {
	ID           string         `json:"id" yaml:"id" validate:"required"`
	Name         string         `json:"name" yaml:"name" validate:"required"`
	Provider     CloudProvider  `json:"provider" yaml:"provider" validate:"required,oneof=AWS AZURE GCP CORE EXTERNAL"`
	Domain       SecurityDomain `json:"domain" yaml:"domain" validate:"required"`
	Description  string         `json:"description" yaml:"description"`
	Icon         string         `json:"icon" yaml:"icon"`
	Compliance   []string       `json:"compliance" yaml:"compliance"`
	Mitigates    []string       `json:"mitigates" yaml:"mitigates"`
	DataCaptured []DataCapture  `json:"data_captured,omitempty" yaml:"dataCaptured,omitempty" validate:"dive"`
}

// Flow is a directed edge that only exists in the modes listed in ActiveInModes.
type Flow struct {
	ID            string   `json:"id" yaml:"id" validate:"required"`
	From          string   `json:"from" yaml:"from" validate:"required"`
	To            string   `json:"to" yaml:"to" validate:"required"`
	Type          FlowType `json:"type" yaml:"type" validate:"required,oneof=TRAFFIC LOGGING ATTACK"`
	Label         string   `json:"label" yaml:"label"`
	Description   string   `json:"description" yaml:"description"`
	ActiveInModes []string `json:"active_in_modes" yaml:"activeInModes" validate:"required,min=1"`
}

// ActiveIn reports whether the flow is eligible to render in mode.
func (f Flow) ActiveIn(mode string) bool {
	return slices.Contains(f.ActiveInModes, mode)
}

// Touches reports whether id is one of the flow's endpoints.
func (f Flow) Touches(id string) bool {
	return f.From == id || f.To == id
}

// Other returns the endpoint opposite to id.
func (f Flow) Other(id string) string {
	if f.From == id {
		return f.To
	}
	return f.From
}

type ThreatVector struct {
	ID                 string   `json:"id" yaml:"id" validate:"required,startswith=threat-"`
	Name               string   `json:"name" yaml:"name" validate:"required"`
	Description        string   `json:"description" yaml:"description"`
	Severity           Severity `json:"severity" yaml:"severity" validate:"required,oneof=MEDIUM HIGH CRITICAL"`
	AffectedComponents []string `json:"affected_components" yaml:"affectedComponents"`
	FlowID             string   `json:"flow_id" yaml:"flowId" validate:"required"`
}

type ImplementationStep struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
}

type RolloutPhase struct {
	ID                string               `json:"id" yaml:"id" validate:"required"`
	Phase             string               `json:"phase" yaml:"phase" validate:"required"`
	Title             string               `json:"title" yaml:"title" validate:"required"`
	Steps             []ImplementationStep `json:"steps" yaml:"steps" validate:"dive"`
	RelatedComponents []string             `json:"related_components" yaml:"relatedComponents"`
}
