package rules

import "github.com/shopspring/decimal"

// Fixed option catalogs the counter works with. These are menu policy, not
// per-product data, which is why they live with the rules instead of the
// product catalog.

// LancheAddOns are the paid add-ons offered on every sandwich.
var LancheAddOns = []PricedOption{
	{Name: "Bacon", Price: decimal.NewFromFloat(4.00)},
	{Name: "Ovo", Price: decimal.NewFromFloat(2.50)},
	{Name: "Queijo Extra", Price: decimal.NewFromFloat(3.00)},
	{Name: "Hambúrguer Extra", Price: decimal.NewFromFloat(6.00)},
	{Name: "Calabresa", Price: decimal.NewFromFloat(4.00)},
}

// FranguinhoSides are the side dishes a franguinho portion picks from.
var FranguinhoSides = []string{
	"Arroz",
	"Feijão Tropeiro",
	"Batata Frita",
	"Polenta",
	"Mandioca",
	"Salada",
}

// AcaiPackaging are the packaging options for açaí; the first is the default.
var AcaiPackaging = []string{"Mesa", "Marmita", "Copo"}

// AcaiComplements, AcaiToppings and AcaiFruits are the free extras, grouped
// the way the counter lays them out. All three feed the same additions list.
var (
	AcaiComplements = []string{"Granola", "Leite em Pó", "Paçoca", "Aveia"}
	AcaiToppings    = []string{"Cobertura de Morango", "Cobertura de Chocolate", "Mel"}
	AcaiFruits      = []string{"Banana", "Morango", "Uva", "Kiwi"}
)

// AcaiPaidExtras are the açaí extras that carry a surcharge.
var AcaiPaidExtras = []PricedOption{
	{Name: "Nutella", Price: decimal.NewFromFloat(5.00)},
	{Name: "Creme de Ninho", Price: decimal.NewFromFloat(5.00)},
	{Name: "Kit Kat", Price: decimal.NewFromFloat(4.00)},
	{Name: "Bis", Price: decimal.NewFromFloat(3.00)},
	{Name: "Morango Extra", Price: decimal.NewFromFloat(2.00)},
}

// FlavorKeywords mark drink names that need a free-text flavor from the
// customer (juices and boxed drinks come in several flavors).
var FlavorKeywords = []string{"suco", "uai"}
