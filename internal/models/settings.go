package models

// AppSettings is the singleton shop configuration record. Mutated
// field-by-field, no history.
type AppSettings struct {
	ShopName   string `json:"shopName"`
	ThemeColor string `json:"themeColor"`
	UserName   string `json:"userName"`
	UserRole   string `json:"userRole"`
}

// themeColors is the enumerated display palette.
var themeColors = map[string]bool{
	"blue":    true,
	"pink":    true,
	"purple":  true,
	"emerald": true,
	"orange":  true,
	"red":     true,
}

// ValidThemeColor reports whether color is part of the palette.
func ValidThemeColor(color string) bool {
	return themeColors[color]
}
