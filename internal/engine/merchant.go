// Package engine runs trade attempts: merchant slots, skill, availability,
// cargo selection, quantity, and the buying orchestrator that composes them.
package engine

import (
	"github.com/talgya/tradewinds/internal/economy"
	"github.com/talgya/tradewinds/internal/entropy"
)

// Role says which side of the trade the merchant is on.
type Role string

const (
	RoleProducer Role = "producer"
	RoleSeeker   Role = "seeker"
)

// Availability is the outcome of the dice gate for one merchant.
type Availability string

const (
	AvailabilityPending              Availability = "pending"
	AvailabilityAvailable            Availability = "available"
	AvailabilityUnavailable          Availability = "unavailable"
	AvailabilityDesperateAvailable   Availability = "desperate_available"
	AvailabilityDesperateUnavailable Availability = "desperate_unavailable"
)

// Merchant is one trading opportunity at a settlement. Computed fresh per
// trade attempt and discarded after the caller consumes it.
type Merchant struct {
	ID           string             `json:"id"`
	Role         Role               `json:"role"`
	Skill        int                `json:"skill"`
	QuantityEP   int                `json:"quantity_ep"`
	Cargo        string             `json:"cargo"`
	Personality  string             `json:"personality"`
	Availability Availability       `json:"availability"`
	Price        *economy.Breakdown `json:"price,omitempty"`
}

// personalityTable is the weighted categorical draw for merchant temperament.
var personalityTable = []struct {
	label  string
	weight int
}{
	{"shrewd", 25},
	{"gruff", 20},
	{"jovial", 20},
	{"taciturn", 15},
	{"desperate", 10},
	{"devout", 10},
}

// DrawPersonality picks a temperament label from the weighted table.
func DrawPersonality(src entropy.Source) string {
	total := 0
	for _, p := range personalityTable {
		total += p.weight
	}
	pick := int(src.Float() * float64(total))
	for _, p := range personalityTable {
		pick -= p.weight
		if pick < 0 {
			return p.label
		}
	}
	return personalityTable[len(personalityTable)-1].label
}
