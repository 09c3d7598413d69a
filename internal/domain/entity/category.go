// Package entity contains the core business objects of the project.
package entity

// Well-known category identifiers. The customization rules dispatch on these;
// any other id falls back to the no-rules variant.
const (
	CategoryLanches    = "lanches"
	CategoryBebidas    = "bebidas"
	CategoryFranguinho = "franguinho"
	CategoryAcai       = "acai"
	CategoryPorcoes    = "porcoes"
	CategoryManual     = "manual"
)

// Category groups products on the menu. Static and immutable.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"` // Emoji or simple text representation.
}
