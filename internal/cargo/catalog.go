package cargo

import "fmt"

// Catalog resolves cargo-type names to their reference data. Implementations
// must be safe for concurrent reads; the core never writes through a Catalog.
type Catalog interface {
	Get(name string) (Type, error)
	ListAll() []Type
}

// MemoryCatalog is an in-memory Catalog over immutable cargo types.
type MemoryCatalog struct {
	byName map[string]Type
	order  []string
}

// NewMemoryCatalog builds a catalog from the given types. Later duplicates of
// a name replace earlier ones.
func NewMemoryCatalog(types []Type) *MemoryCatalog {
	c := &MemoryCatalog{byName: make(map[string]Type, len(types))}
	for _, t := range types {
		if _, seen := c.byName[t.Name]; !seen {
			c.order = append(c.order, t.Name)
		}
		c.byName[t.Name] = t
	}
	return c
}

// Get returns the cargo type with the given name.
func (c *MemoryCatalog) Get(name string) (Type, error) {
	t, ok := c.byName[name]
	if !ok {
		return Type{}, fmt.Errorf("cargo %q: %w", name, ErrNotFound)
	}
	return t, nil
}

// ListAll returns every cargo type in insertion order.
func (c *MemoryCatalog) ListAll() []Type {
	out := make([]Type, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Categories used by the built-in dataset.
const (
	CategoryAgriculture = "Agriculture"
	CategoryFishing     = "Fishing"
	CategoryForestry    = "Forestry"
	CategoryMining      = "Mining"
	CategoryForaging    = "Foraging"
	CategoryHunting     = "Hunting"
	CategoryCrafts      = "Crafts"
	CategoryLuxury      = "Luxury"
)

// DefaultCatalog returns the built-in cargo dataset. Food is expensive in
// winter and cheap after harvest; furs and coal peak in winter; herbs are
// abundant in summer.
func DefaultCatalog() *MemoryCatalog {
	return NewMemoryCatalog([]Type{
		{Name: "Grain", Category: CategoryAgriculture, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 2, Summer: 1.8, Autumn: 1.4, Winter: 3}},
		{Name: "Fish", Category: CategoryFishing, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 2.4, Summer: 1.8, Autumn: 1.6, Winter: 3}},
		{Name: "Timber", Category: CategoryForestry, EncumbrancePerUnit: 2,
			Prices: SeasonalPrices{Spring: 3, Summer: 2.7, Autumn: 3, Winter: 3.3}},
		{Name: "Stone", Category: CategoryMining, EncumbrancePerUnit: 2,
			Prices: SeasonalPrices{Spring: 3, Summer: 2.7, Autumn: 3, Winter: 3.3}},
		{Name: "Iron Ore", Category: CategoryMining, EncumbrancePerUnit: 2,
			Prices: SeasonalPrices{Spring: 4, Summer: 3.6, Autumn: 4, Winter: 4.4}},
		{Name: "Coal", Category: CategoryMining, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 4, Summer: 3.6, Autumn: 4, Winter: 5}},
		{Name: "Herbs", Category: CategoryForaging, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 4, Summer: 3.5, Autumn: 4.5, Winter: 7}},
		{Name: "Furs", Category: CategoryHunting, EncumbrancePerUnit: 1,
			Prices:       SeasonalPrices{Spring: 6, Summer: 4.2, Autumn: 6, Winter: 10.8},
			QualityTiers: map[QualityTier]float64{QualityPoor: 0.4, QualityAverage: 1.0, QualityGood: 1.6, QualityExcellent: 2.5}},
		{Name: "Gems", Category: CategoryMining, EncumbrancePerUnit: 1,
			Prices:       SeasonalPrices{Spring: 15, Summer: 13.5, Autumn: 15, Winter: 16.5},
			QualityTiers: map[QualityTier]float64{QualityPoor: 0.3, QualityAverage: 1.0, QualityGood: 2.0, QualityExcellent: 4.0}},
		{Name: "Exotics", Category: CategoryLuxury, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 20, Summer: 18, Autumn: 20, Winter: 22}},
		{Name: "Tools", Category: CategoryCrafts, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 10, Summer: 9, Autumn: 10, Winter: 11}},
		{Name: "Weapons", Category: CategoryCrafts, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 15, Summer: 13.5, Autumn: 15, Winter: 16.5}},
		{Name: "Clothing", Category: CategoryCrafts, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 8, Summer: 7.2, Autumn: 8, Winter: 8.8}},
		{Name: "Medicine", Category: CategoryCrafts, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 12, Summer: 10.8, Autumn: 12, Winter: 16}},
		{Name: "Luxuries", Category: CategoryLuxury, EncumbrancePerUnit: 1,
			Prices: SeasonalPrices{Spring: 25, Summer: 22.5, Autumn: 25, Winter: 27.5}},
	})
}
