package analytics

import (
	"github.com/montanaflynn/stats"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
)

// Stats summarizes a series of numbers. Average is rounded to two decimals.
type Stats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Sum     float64 `json:"sum"`
}

// Calculate summarizes values. Empty input yields the zero Stats.
func Calculate(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	data := stats.Float64Data(values)
	sum, _ := data.Sum()
	mean, _ := data.Mean()
	lo, _ := data.Min()
	hi, _ := data.Max()
	avg, _ := stats.Round(mean, 2)

	return Stats{
		Count:   len(values),
		Average: avg,
		Min:     lo,
		Max:     hi,
		Sum:     sum,
	}
}

// calculateOpt is Calculate for optional series: nil when values is empty.
func calculateOpt(values []float64) *Stats {
	if len(values) == 0 {
		return nil
	}
	s := Calculate(values)
	return &s
}

// collect gathers the non-nil values field returns for each record.
func collect(items []arcraiders.Item, field func(arcraiders.Item) *float64) []float64 {
	var out []float64
	for _, it := range items {
		if v := field(it); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// WeaponSummary holds per-attribute statistics for a set of weapons.
// A field is nil when no weapon carries that attribute.
type WeaponSummary struct {
	Damage   *Stats `json:"damage,omitempty"`
	FireRate *Stats `json:"fireRate,omitempty"`
	Range    *Stats `json:"range,omitempty"`
}

// WeaponStats summarizes damage, fire rate and range across weapons.
func WeaponStats(weapons []arcraiders.Item) WeaponSummary {
	return WeaponSummary{
		Damage:   calculateOpt(collect(weapons, ByDamage.value)),
		FireRate: calculateOpt(collect(weapons, ByFireRate.value)),
		Range:    calculateOpt(collect(weapons, ByRange.value)),
	}
}

// ArmorSummary holds armor value statistics; Armor is nil when no piece
// reports an armor value.
type ArmorSummary struct {
	Armor *Stats `json:"armor,omitempty"`
}

// ArmorStats summarizes armor values across armor pieces.
func ArmorStats(armor []arcraiders.Item) ArmorSummary {
	return ArmorSummary{Armor: calculateOpt(collect(armor, armorValue))}
}

// RarityDistribution counts items per rarity. Items without a rarity are
// counted under "unknown".
func RarityDistribution(items []arcraiders.Item) map[string]int {
	dist := make(map[string]int)
	for _, it := range items {
		r := string(it.Rarity)
		if r == "" {
			r = "unknown"
		}
		dist[r]++
	}
	return dist
}
