// Package icons maps catalog icon names onto the closed set of icons the
// renderers know how to draw.
package icons

type Icon string

const (
	Shield      Icon = "Shield"
	Lock        Icon = "Lock"
	Globe       Icon = "Globe"
	Server      Icon = "Server"
	Database    Icon = "Database"
	Eye         Icon = "Eye"
	Activity    Icon = "Activity"
	Zap         Icon = "Zap"
	FileCheck   Icon = "FileCheck"
	Layers      Icon = "Layers"
	Key         Icon = "Key"
	Vault       Icon = "Vault"
	Fingerprint Icon = "Fingerprint"
	GitBranch   Icon = "GitBranch"
	Container   Icon = "Container"

	Default = Activity
)

// Resolve returns the icon named name, or Default for anything unmapped.
func Resolve(name string) Icon {
	switch Icon(name) {
	case Shield, Lock, Globe, Server, Database, Eye, Activity, Zap,
		FileCheck, Layers, Key, Vault, Fingerprint, GitBranch, Container:
		return Icon(name)
	default:
		return Default
	}
}

// Glyph is a single-cell symbol for character-grid renderers.
func (i Icon) Glyph() string {
	switch i {
	case Shield:
		return "◈"
	case Lock:
		return "▣"
	case Globe:
		return "◎"
	case Server:
		return "▤"
	case Database:
		return "◍"
	case Eye:
		return "◉"
	case Zap:
		return "ϟ"
	case FileCheck:
		return "✓"
	case Layers:
		return "≡"
	case Key:
		return "⚷"
	case Vault:
		return "▩"
	case Fingerprint:
		return "◌"
	case GitBranch:
		return "⑂"
	case Container:
		return "▦"
	default:
		return "∿"
	}
}

func Glyph(name string) string {
	return Resolve(name).Glyph()
}
