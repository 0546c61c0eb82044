package entity

const DefaultTheme = "classic"

// Theme is a visual preset a shop owner can pick for their public page.
type Theme struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Header     string `json:"header"`
	Text       string `json:"text"`
	Snow       bool   `json:"snow"`
}

var themes = map[string]Theme{
	"classic": {
		Key:        "classic",
		Name:       "Original",
		Background: "bg-gray-50",
		Header:     "bg-gradient-to-r from-blue-600 to-purple-600 border-b-0",
		Text:       "text-white",
	},
	"dark": {
		Key:        "dark",
		Name:       "Oscuro",
		Background: "bg-gray-900",
		Header:     "bg-gradient-to-r from-gray-800 to-black border-b border-gray-700",
		Text:       "text-gray-100",
	},
	"christmas": {
		Key:        "christmas",
		Name:       "Navidad 🎄",
		Background: "bg-red-50",
		Header:     "bg-gradient-to-b from-red-600 to-red-800 border-b-4 border-green-700",
		Text:       "text-white",
		Snow:       true,
	},
}

// ResolveTheme returns the preset for key, falling back to the default when
// the key is unknown or empty.
func ResolveTheme(key string) Theme {
	if theme, ok := themes[key]; ok {
		return theme
	}
	return themes[DefaultTheme]
}

// IsKnownTheme reports whether key names a preset.
func IsKnownTheme(key string) bool {
	_, ok := themes[key]
	return ok
}
