package export

import "github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/domain"

func ProviderColor(p domain.CloudProvider) string {
	switch p {
	case domain.ProviderAWS:
		return "#f97316"
	case domain.ProviderAzure:
		return "#3b82f6"
	case domain.ProviderGCP:
		return "#22c55e"
	case domain.ProviderCore:
		return "#a855f7"
	default:
		return "#94a3b8"
	}
}

func FlowColor(t domain.FlowType) string {
	switch t {
	case domain.FlowAttack:
		return "#ef4444"
	case domain.FlowLogging:
		return "#a855f7"
	default:
		return "#3b82f6"
	}
}

// alpha turns an opacity into the two hex digits GraphViz appends to a colour.
func alpha(opacity float64) string {
	const hex = "0123456789abcdef"
	v := int(opacity*255 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return string([]byte{hex[v>>4], hex[v&0x0f]})
}
