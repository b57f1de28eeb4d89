package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
)

var validate = validator.New()

// Validate checks field constraints and referential integrity of cat. It
// reports every problem it finds, joined into one error wrapping
// domain.ErrInvalidCatalog.
func Validate(cat *domain.Catalog) error {
	if cat == nil {
		return fmt.Errorf("%w: catalog is nil", domain.ErrInvalidCatalog)
	}

	var errs []error
	if err := validate.Struct(cat); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}

	components := map[string]bool{}
	for _, c := range cat.Components {
		if components[c.ID] {
			errs = append(errs, fmt.Errorf("duplicate component %q", c.ID))
		}
		components[c.ID] = true
	}

	threats := map[string]bool{}
	for _, t := range cat.Threats {
		if threats[t.ID] {
			errs = append(errs, fmt.Errorf("duplicate threat %q", t.ID))
		}
		threats[t.ID] = true
	}

	flows := map[string]domain.Flow{}
	for _, f := range cat.Flows {
		if _, dup := flows[f.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate flow %q", f.ID))
		}
		flows[f.ID] = f
		if !components[f.From] {
			errs = append(errs, fmt.Errorf("flow %q: unknown source component %q", f.ID, f.From))
		}
		if !components[f.To] {
			errs = append(errs, fmt.Errorf("flow %q: unknown target component %q", f.ID, f.To))
		}
		for _, m := range f.ActiveInModes {
			if !knownMode(m, threats) {
				errs = append(errs, fmt.Errorf("flow %q: unknown mode %q", f.ID, m))
			}
		}
	}

	for _, t := range cat.Threats {
		for _, id := range t.AffectedComponents {
			if !components[id] {
				errs = append(errs, fmt.Errorf("threat %q: unknown affected component %q", t.ID, id))
			}
		}
		f, ok := flows[t.FlowID]
		if !ok {
			errs = append(errs, fmt.Errorf("threat %q: unknown flow %q", t.ID, t.FlowID))
			continue
		}
		if !f.ActiveIn(t.ID) {
			errs = append(errs, fmt.Errorf("threat %q: flow %q is not active in the threat mode", t.ID, t.FlowID))
		}
	}

	phases := map[string]bool{}
	for _, p := range cat.Phases {
		if phases[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate phase %q", p.ID))
		}
		phases[p.ID] = true
		for _, id := range p.RelatedComponents {
			if !components[id] {
				errs = append(errs, fmt.Errorf("phase %q: unknown related component %q", p.ID, id))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
}

func knownMode(mode string, threats map[string]bool) bool {
	switch mode {
	case domain.ModeDefault, domain.ModeDataflow, domain.ModeLogging:
		return true
	}
	return threats[mode]
}

func fieldErrors(err error) []error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}
	out := make([]error, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			out = append(out, fmt.Errorf("%s: field is required", e.Namespace()))
		case "oneof":
			out = append(out, fmt.Errorf("%s: %v is not one of [%s]", e.Namespace(), e.Value(), e.Param()))
		case "min":
			out = append(out, fmt.Errorf("%s: must have at least %s entries", e.Namespace(), e.Param()))
		default:
			out = append(out, fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag()))
		}
	}
	return out
}
