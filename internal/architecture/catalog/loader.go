package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"
)

// document is the on-disk layout of a catalog file. Keys follow the
// camelCase naming used by the browser renderer's data files.
type document struct {
	Components []domain.Component    `yaml:"components"`
	Flows      []domain.Flow         `yaml:"flows"`
	Threats    []domain.ThreatVector `yaml:"threats"`
	Phases     []domain.RolloutPhase `yaml:"phases"`
}

// LoadFile reads a YAML catalog from path. The result is indexed but not
// validated; call Validate before serving it.
func LoadFile(path string) (*domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return LoadBytes(b)
}

func LoadBytes(b []byte) (*domain.Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return domain.NewCatalog(doc.Components, doc.Flows, doc.Threats, doc.Phases), nil
}

// Load returns the catalog at path, or the built-in catalog when path is
// empty. Loaded catalogs must pass Validate.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	cat, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Marshal renders cat in the same YAML layout LoadBytes reads.
func Marshal(cat *domain.Catalog) ([]byte, error) {
	return yaml.Marshal(document{
		Components: cat.Components,
		Flows:      cat.Flows,
		Threats:    cat.Threats,
		Phases:     cat.Phases,
	})
}
