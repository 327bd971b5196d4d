// Command tradewinds generates a merchant slate for one settlement and
// season: who is trading, what they carry, at what skill, quantity, and
// price.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/dataset"
	"github.com/talgya/tradewinds/internal/economy"
	"github.com/talgya/tradewinds/internal/engine"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/persistence"
	"github.com/talgya/tradewinds/internal/settlement"
)

func main() {
	var (
		settlementsPath = flag.String("settlements", "", "settlement dataset (YAML); required")
		cargoPath       = flag.String("cargo", "", "cargo dataset (YAML); empty uses the built-in catalog")
		name            = flag.String("settlement", "", "settlement name; required")
		seasonName      = flag.String("season", "spring", "season: spring, summer, autumn, winter")
		seed            = flag.Int64("seed", 0, "deterministic seed; 0 uses crypto randomness")
		desperation     = flag.Bool("desperation", false, "allow desperation rerolls on failed availability")
		partial         = flag.Bool("partial", false, "price as a partial purchase")
		quality         = flag.String("quality", "", "quality tier: poor, average, good, excellent")
		haggle          = flag.String("haggle", "", "haggle outcome: success, success_talent, failure, failure_penalty")
		ledgerPath      = flag.String("ledger", "", "SQLite ledger path; empty disables the audit log")
		verbose         = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *settlementsPath == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "usage: tradewinds -settlements region.yaml -settlement NAME [-season spring]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	season, err := cargo.ParseSeason(*seasonName)
	if err != nil {
		fatal("parse season", err)
	}

	settlements, err := dataset.LoadSettlements(*settlementsPath)
	if err != nil {
		fatal("load settlements", err)
	}
	target := findSettlement(settlements, *name)
	if target == nil {
		fatal("find settlement", fmt.Errorf("%q not in %s", *name, *settlementsPath))
	}

	var catalog cargo.Catalog = cargo.DefaultCatalog()
	if *cargoPath != "" {
		catalog, err = dataset.LoadCatalog(*cargoPath)
		if err != nil {
			fatal("load cargo", err)
		}
	}

	var src entropy.Source
	if *seed != 0 {
		src = entropy.NewSeeded(*seed)
	} else if client := entropy.NewClient(os.Getenv("RANDOM_ORG_API_KEY")); client.Enabled() {
		slog.Info("using random.org entropy")
		src = client
	} else {
		src = entropy.Crypto{}
	}

	var ledger *persistence.Ledger
	if *ledgerPath != "" {
		ledger, err = persistence.Open(*ledgerPath)
		if err != nil {
			fatal("open ledger", err)
		}
		defer ledger.Close()
	}

	opts := engine.TradeOptions{
		AllowDesperation: *desperation,
		PartialPurchase:  *partial,
		Quality:          cargo.QualityTier(*quality),
		Haggle:           economy.HaggleOutcome(*haggle),
	}

	orch := engine.NewOrchestrator(catalog, src)
	attempts, err := orch.GenerateMerchants(target, season, opts)
	if err != nil {
		fatal("generate merchants", err)
	}

	fmt.Printf("%s (%s), %s: size %d, wealth %d, population %s\n",
		target.Name, target.Region, season,
		target.Size, target.Wealth, humanize.Comma(int64(target.Population)))
	fmt.Printf("%d merchant slot(s)\n\n", len(attempts))

	for i, a := range attempts {
		printAttempt(i+1, a)
		if ledger != nil {
			if err := ledger.Record(a); err != nil {
				slog.Warn("ledger record failed", "error", err)
			}
		}
	}
}

func findSettlement(list []settlement.Settlement, name string) *settlement.Settlement {
	for i := range list {
		if strings.EqualFold(list[i].Name, name) {
			return &list[i]
		}
	}
	return nil
}

func printAttempt(n int, a engine.TradeAttempt) {
	m := a.Merchant
	fmt.Printf("#%d  %s merchant, %s\n", n, m.Personality, m.Availability)
	fmt.Printf("    availability: rolled %d vs %d%%\n", a.Availability.Roll, a.Availability.Chance)
	if a.Desperation != nil {
		fmt.Printf("    desperation:  rolled %d vs %d%%\n", a.Desperation.Roll, a.Desperation.Chance)
	}
	if m.Availability != engine.AvailabilityAvailable && m.Availability != engine.AvailabilityDesperateAvailable {
		fmt.Println()
		return
	}

	fmt.Printf("    cargo: %s (%s), %s EP, skill %d, %s\n",
		m.Cargo, a.Selection.Method, humanize.Comma(int64(m.QuantityEP)), m.Skill, m.Role)
	if a.Candidates != nil {
		if share := a.Candidates.Probability(m.Cargo); share > 0 {
			fmt.Printf("    table share: %.1f%% of eligible cargo\n", share*100)
		}
	}
	fmt.Printf("    equilibrium: supply %d / demand %d (%s)\n",
		a.Equilibrium.Supply, a.Equilibrium.Demand, a.Equilibrium.State)

	if m.Price != nil {
		fmt.Printf("    price: %s per %d EP (base %s, %s quality)\n",
			m.Price.FinalPerBlock.StringFixed(2), economy.UnitBlockEP,
			m.Price.BasePerBlock.StringFixed(2), m.Price.Quality)
		for _, mod := range m.Price.Modifiers {
			fmt.Printf("      %+v%%  %s\n", mod.Percent, mod.Description)
		}
		fmt.Printf("    total: %s\n", m.Price.Total.StringFixed(2))
	} else {
		fmt.Printf("    price: no catalog entry for %q, GM adjudicates\n", m.Cargo)
	}
	fmt.Println()
}

func fatal(what string, err error) {
	slog.Error(what, "error", err)
	os.Exit(1)
}
