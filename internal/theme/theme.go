// Package theme maps a site theme name to its color palette.
package theme

// Palette is the color triple derived from a theme selection.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

var palettes = map[string]Palette{
	"ocean":  {Primary: "#0284c7", Secondary: "#2dd4bf", Accent: "#e0f2fe"},
	"marble": {Primary: "#475569", Secondary: "#94a3b8", Accent: "#f8fafc"},
	"sunset": {Primary: "#e11d48", Secondary: "#f59e0b", Accent: "#fff1f2"},
}

// Lookup returns the palette for name. Unknown names return ok=false and the
// caller keeps whatever palette it last applied.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// Names lists the known theme names.
func Names() []string {
	return []string{"ocean", "marble", "sunset"}
}
