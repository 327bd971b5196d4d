// Package region generates plausible settlement datasets from layered
// simplex noise, for GMs starting a new campaign. Deterministic from seed.
package region

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/settlement"
)

// GenConfig holds region generation parameters.
type GenConfig struct {
	Name        string // Region name
	Seed        int64  // Random seed (0 = random)
	Settlements int    // How many settlements to place
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Name:        "The Reaches",
		Seed:        0,
		Settlements: 12,
	}
}

// Generate produces a full region of settlements. Three noise layers drive
// the derivation: fertility picks production tags, prosperity picks wealth
// and size, and traffic decides which settlements become trade centers.
func Generate(cfg GenConfig) []settlement.Settlement {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	count := cfg.Settlements
	if count < 1 {
		count = 1
	}

	fertNoise := opensimplex.NewNormalized(seed)
	prospNoise := opensimplex.NewNormalized(seed + 1)
	trafficNoise := opensimplex.NewNormalized(seed + 2)
	rng := rand.New(rand.NewSource(seed + 200))

	names := generateNames(rng, count)

	out := make([]settlement.Settlement, 0, count)
	for i := 0; i < count; i++ {
		// Sample each settlement at a distinct point in noise space so
		// neighbors correlate without repeating.
		x := float64(i) * 0.37
		y := float64(i) * 0.61

		fert := octaveNoise(fertNoise, x, y, 3, 0.8, 0.5)
		prosp := octaveNoise(prospNoise, x, y, 3, 0.7, 0.5)
		traffic := octaveNoise(trafficNoise, x, y, 2, 0.9, 0.5)

		s := settlement.Settlement{
			Region: cfg.Name,
			Name:   names[i],
			Size:   1 + int(prosp*4.99),
			Wealth: 1 + int((prosp*0.6+traffic*0.4)*4.99),
		}
		s.Population = populationFor(s.Size, rng)
		s.Production = productionFor(fert, traffic, rng)
		s.Demand = demandFor(s.Production, rng)
		s.Flags = flagsFor(s, traffic, rng)
		s.Garrison = garrisonFor(s.Size, rng)

		out = append(out, s)
	}
	return out
}

// populationFor picks a population inside the band for a size ordinal.
func populationFor(size int, rng *rand.Rand) int {
	bands := [6][2]int{
		{}, {50, 300}, {300, 1200}, {1200, 5000}, {5000, 20000}, {20000, 60000},
	}
	band := bands[size]
	return band[0] + rng.Intn(band[1]-band[0])
}

// productionFor derives production tags from fertility and traffic.
func productionFor(fert, traffic float64, rng *rand.Rand) []string {
	var tags []string
	if traffic > 0.7 {
		tags = append(tags, settlement.TradeTag)
	}

	categories := []struct {
		name      string
		threshold float64
	}{
		{cargo.CategoryAgriculture, 0.35},
		{cargo.CategoryForestry, 0.5},
		{cargo.CategoryFishing, 0.55},
		{cargo.CategoryMining, 0.6},
		{cargo.CategoryHunting, 0.65},
		{cargo.CategoryCrafts, 0.7},
	}
	for _, c := range categories {
		if fert > c.threshold && rng.Float64() < 0.6 {
			tags = append(tags, c.name)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, cargo.CategoryAgriculture)
	}
	return tags
}

// demandFor picks demand tags that the settlement does not already produce.
func demandFor(production []string, rng *rand.Rand) []string {
	produced := make(map[string]bool, len(production))
	for _, tag := range production {
		produced[tag] = true
	}
	pool := []string{
		cargo.CategoryAgriculture, cargo.CategoryMining, cargo.CategoryCrafts,
		cargo.CategoryLuxury, cargo.CategoryForestry,
	}
	var out []string
	for _, c := range pool {
		if !produced[c] && rng.Float64() < 0.4 {
			out = append(out, c)
		}
	}
	return out
}

// flagsFor derives flags from the settlement shape.
func flagsFor(s settlement.Settlement, traffic float64, rng *rand.Rand) []settlement.Flag {
	var flags []settlement.Flag
	for _, tag := range s.Production {
		switch tag {
		case settlement.TradeTag:
			flags = append(flags, settlement.FlagTrade)
		case cargo.CategoryAgriculture:
			flags = append(flags, settlement.FlagAgriculture)
		case cargo.CategoryMining:
			flags = append(flags, settlement.FlagMine)
		}
	}
	if s.Size >= 4 && rng.Float64() < 0.5 {
		flags = append(flags, settlement.FlagGovernment)
	}
	if traffic > 0.6 && s.Wealth <= 2 && rng.Float64() < 0.35 {
		flags = append(flags, settlement.FlagSmuggling)
	}
	if s.Size == 1 && len(s.Production) == 1 {
		flags = append(flags, settlement.FlagSubsistence)
	}
	return flags
}

// garrisonFor scales troop counts with settlement size.
func garrisonFor(size int, rng *rand.Rand) settlement.Garrison {
	base := size * size * 5
	return settlement.Garrison{
		Infantry: base + rng.Intn(base+1),
		Archers:  base/2 + rng.Intn(base/2+1),
		Cavalry:  rng.Intn(base/3 + 1),
		Siege:    rng.Intn(size),
	}
}

// octaveNoise layers simplex noise for a softer distribution.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	freq := frequency

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*freq, y*freq) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		freq *= 2
	}
	if maxValue == 0 {
		return 0
	}
	v := total / maxValue
	return math.Max(0, math.Min(1, v))
}

// generateNames produces procedural settlement names by combining syllables.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
		"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
		"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
		"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
	}
	suffixes := []string{
		"haven", "ford", "hollow", "wick", "bridge", "gate", "keep",
		"stead", "wood", "field", "dale", "crest", "vale", "port",
		"town", "bury", "marsh", "well", "brook", "cliff", "moor",
		"ridge", "watch", "fall", "rest", "point", "reach", "helm",
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}
