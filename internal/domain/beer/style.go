package beer

// Style represents a beer style
type Style string

const (
	StyleLager   Style = "LAGER"
	StylePilsner Style = "PILSNER"
	StyleStout   Style = "STOUT"
	StyleGose    Style = "GOSE"
	StylePorter  Style = "PORTER"
	StyleAle     Style = "ALE"
	StyleWheat   Style = "WHEAT"
	StyleIPA     Style = "IPA"
	StylePaleAle Style = "PALE_ALE"
	StyleSaison  Style = "SAISON"
)

// IsValid checks if the style is a known beer style
func (s Style) IsValid() bool {
	switch s {
	case StyleLager, StylePilsner, StyleStout, StyleGose, StylePorter,
		StyleAle, StyleWheat, StyleIPA, StylePaleAle, StyleSaison:
		return true
	}
	return false
}

// String returns the string representation of Style
func (s Style) String() string {
	return string(s)
}

// Styles returns all known beer styles
func Styles() []Style {
	return []Style{
		StyleLager, StylePilsner, StyleStout, StyleGose, StylePorter,
		StyleAle, StyleWheat, StyleIPA, StylePaleAle, StyleSaison,
	}
}
