// Package layout places catalog components in world space. Positions are
// authored by hand; ids without an entry fall back to the world centre.
package layout

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region is a fixed label drawn behind a provider's components.
type Region struct {
	Label    string `json:"label"`
	Provider string `json:"provider"`
	Point
}

// Center is the world-space centre of the diagram and the fallback position.
var Center = Point{X: 600, Y: 350}

var positions = map[string]Point{
	// top tier
	"internet": {600, 50},
	"idp-core": {450, 150},
	"attacker": {900, 100},

	// core
	"cicd-core": {100, 350},
	"siem-core": {600, 350},
	"cspm-core": {600, 450},

	// aws, left
	"aws-waf":       {300, 250},
	"aws-kms":       {200, 250},
	"aws-workload":  {300, 350},
	"aws-guardduty": {200, 450},

	// azure, right
	"azure-fw":       {900, 250},
	"azure-kv":       {1000, 250},
	"azure-db":       {900, 350},
	"azure-defender": {1000, 450},

	// gcp, bottom
	"gcp-armor": {500, 600},
	"gcp-repo":  {400, 700},
	"gcp-kms":   {800, 700},
	"gcp-scc":   {700, 600},
}

var regions = []Region{
	{Label: "AWS VPC", Provider: "AWS", Point: Point{300, 200}},
	{Label: "AZURE VNET", Provider: "AZURE", Point: Point{900, 200}},
	{Label: "GCP VPC", Provider: "GCP", Point: Point{600, 680}},
}

// Position returns the authored coordinate for id, or Center.
func Position(id string) Point {
	if p, ok := positions[id]; ok {
		return p
	}
	return Center
}

// Known reports whether id has an authored position.
func Known(id string) bool {
	_, ok := positions[id]
	return ok
}

func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// Bounds returns the smallest box holding every authored position.
func Bounds() (lo, hi Point) {
	first := true
	for _, p := range positions {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}
	return lo, hi
}
