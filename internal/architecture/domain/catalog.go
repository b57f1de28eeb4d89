package domain

// Catalog is the immutable reference data the diagram is built from.
// It is assembled once at startup and shared read-only afterwards.
type Catalog struct {
	Components []Component    `json:"components" yaml:"components" validate:"dive"`
	Flows      []Flow         `json:"flows" yaml:"flows" validate:"dive"`
	Threats    []ThreatVector `json:"threats" yaml:"threats" validate:"dive"`
	Phases     []RolloutPhase `json:"phases" yaml:"phases" validate:"dive"`

	components map[string]int
	flows      map[string]int
	threats    map[string]int
	phases     map[string]int
}

func NewCatalog(components []Component, flows []Flow, threats []ThreatVector, phases []RolloutPhase) *Catalog {
	c := &Catalog{
		Components: components,
		Flows:      flows,
		Threats:    threats,
		Phases:     phases,
	}
	c.Index()
	return c
}

// Index rebuilds the id lookups. Loaders that fill the exported slices
// directly must call it before the catalog is used.
func (c *Catalog) Index() {
	c.components = make(map[string]int, len(c.Components))
	for i, comp := range c.Components {
		if _, ok := c.components[comp.ID]; !ok {
			c.components[comp.ID] = i
		}
	}
	c.flows = make(map[string]int, len(c.Flows))
	for i, f := range c.Flows {
		if _, ok := c.flows[f.ID]; !ok {
			c.flows[f.ID] = i
		}
	}
	c.threats = make(map[string]int, len(c.Threats))
	for i, t := range c.Threats {
		if _, ok := c.threats[t.ID]; !ok {
			c.threats[t.ID] = i
		}
	}
	c.phases = make(map[string]int, len(c.Phases))
	for i, p := range c.Phases {
		if _, ok := c.phases[p.ID]; !ok {
			c.phases[p.ID] = i
		}
	}
}

func (c *Catalog) Component(id string) (Component, bool) {
	i, ok := c.components[id]
	if !ok {
		return Component{}, false
	}
	return c.Components[i], true
}

func (c *Catalog) Flow(id string) (Flow, bool) {
	i, ok := c.flows[id]
	if !ok {
		return Flow{}, false
	}
	return c.Flows[i], true
}

func (c *Catalog) Threat(id string) (ThreatVector, bool) {
	i, ok := c.threats[id]
	if !ok {
		return ThreatVector{}, false
	}
	return c.Threats[i], true
}

func (c *Catalog) Phase(id string) (RolloutPhase, bool) {
	i, ok := c.phases[id]
	if !ok {
		return RolloutPhase{}, false
	}
	return c.Phases[i], true
}

// Modes lists the selectable view modes: the two layers followed by one
// mode per threat vector, in catalog order.
func (c *Catalog) Modes() []string {
	modes := []string{ModeDefault, ModeDataflow}
	for _, t := range c.Threats {
		modes = append(modes, t.ID)
	}
	return modes
}
