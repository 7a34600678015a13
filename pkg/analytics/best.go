package analytics

import (
	"fmt"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

// Criterion selects the weapon attribute BestWeapon ranks by.
type Criterion string

const (
	ByDamage   Criterion = "damage"
	ByFireRate Criterion = "fireRate"
	ByRange    Criterion = "range"
)

// Criteria lists the supported criteria.
var Criteria = []Criterion{ByDamage, ByFireRate, ByRange}

// ParseCriterion validates s as a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	for _, c := range Criteria {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errs.New(errs.ErrCodeInvalidInput, "unknown criterion %q (want damage, fireRate or range)", s)
}

func (c Criterion) value(it arcraiders.Item) *float64 {
	switch c {
	case ByDamage:
		return it.Damage
	case ByFireRate:
		return it.FireRate
	case ByRange:
		return it.Range
	}
	return nil
}

func armorValue(it arcraiders.Item) *float64 { return it.ArmorValue }

// BestWeapon returns the weapon with the highest value for c. Missing
// values count as zero and the first of equal values wins. It returns nil
// for an empty slice.
func BestWeapon(weapons []arcraiders.Item, c Criterion) *arcraiders.Item {
	return best(weapons, c.value)
}

// BestArmor returns the armor piece with the highest armor value.
func BestArmor(armor []arcraiders.Item) *arcraiders.Item {
	return best(armor, armorValue)
}

func best(items []arcraiders.Item, field func(arcraiders.Item) *float64) *arcraiders.Item {
	if len(items) == 0 {
		return nil
	}
	idx, top := 0, orZero(field(items[0]))
	for i := 1; i < len(items); i++ {
		if v := orZero(field(items[i])); v > top {
			idx, top = i, v
		}
	}
	return &items[idx]
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Report is the combined summary printed by the stats command.
type Report struct {
	Weapons WeaponReport `json:"weapons"`
	Items   ItemReport   `json:"items"`
}

// WeaponReport summarizes the weapon set.
type WeaponReport struct {
	Total int           `json:"total"`
	Stats WeaponSummary `json:"stats"`
	Best  *BestEntry    `json:"best"`
}

// BestEntry names the top weapon by damage.
type BestEntry struct {
	Name   string   `json:"name"`
	Damage *float64 `json:"damage,omitempty"`
}

// ItemReport summarizes the full item set.
type ItemReport struct {
	Total              int            `json:"total"`
	RarityDistribution map[string]int `json:"rarityDistribution"`
}

// Summarize builds a Report from the weapon and item listings.
func Summarize(weapons, items []arcraiders.Item) Report {
	r := Report{
		Weapons: WeaponReport{Total: len(weapons), Stats: WeaponStats(weapons)},
		Items:   ItemReport{Total: len(items), RarityDistribution: RarityDistribution(items)},
	}
	if w := BestWeapon(weapons, ByDamage); w != nil {
		r.Weapons.Best = &BestEntry{Name: w.Name, Damage: w.Damage}
	}
	return r
}

// String renders s on one line.
func (s Stats) String() string {
	return fmt.Sprintf("n=%d avg=%.2f min=%g max=%g sum=%g", s.Count, s.Average, s.Min, s.Max, s.Sum)
}
