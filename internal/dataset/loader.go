// Package dataset loads settlement and cargo reference data from YAML
// files. Files are assumed schema-valid; only the required-field checks
// behind the configuration errors run here.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/settlement"
)

// RegionFile is the on-disk shape of a settlement dataset.
type RegionFile struct {
	Region      string                  `yaml:"region"`
	Settlements []settlement.Settlement `yaml:"settlements"`
}

// LoadSettlements reads a region file and returns its settlements, with the
// file-level region name filled into each record that lacks one.
func LoadSettlements(path string) ([]settlement.Settlement, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settlements: %w", err)
	}

	var file RegionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := range file.Settlements {
		if file.Settlements[i].Region == "" {
			file.Settlements[i].Region = file.Region
		}
		if err := file.Settlements[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return file.Settlements, nil
}

// CargoFile is the on-disk shape of a cargo dataset.
type CargoFile struct {
	CargoTypes []cargo.Type `yaml:"cargo_types"`
}

// LoadCatalog reads a cargo dataset into a catalog.
func LoadCatalog(path string) (*cargo.MemoryCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cargo types: %w", err)
	}

	var file CargoFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(file.CargoTypes) == 0 {
		return nil, fmt.Errorf("%s: no cargo types: %w", path, cargo.ErrConfigurationMissing)
	}
	for _, t := range file.CargoTypes {
		if t.Name == "" {
			return nil, fmt.Errorf("%s: cargo type without name: %w", path, cargo.ErrConfigurationMissing)
		}
		if t.Category == "" {
			return nil, fmt.Errorf("%s: cargo %s without category: %w", path, t.Name, cargo.ErrConfigurationMissing)
		}
	}
	return cargo.NewMemoryCatalog(file.CargoTypes), nil
}
