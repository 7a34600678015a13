package analytics

import (
	"testing"

	"github.com/matzehuels/arcraiders/pkg/arcraiders"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

func f(v float64) *float64 { return &v }

func weapon(name string, damage, fireRate, rng *float64) arcraiders.Item {
	return arcraiders.Item{
		ID:          name,
		Name:        name,
		Type:        arcraiders.TypeWeapon,
		WeaponStats: arcraiders.WeaponStats{Damage: damage, FireRate: fireRate, Range: rng},
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Stats
	}{
		{"empty", nil, Stats{}},
		{"single", []float64{7}, Stats{Count: 1, Average: 7, Min: 7, Max: 7, Sum: 7}},
		{"rounded average", []float64{1, 2, 2}, Stats{Count: 3, Average: 1.67, Min: 1, Max: 2, Sum: 5}},
		{"negative", []float64{-4, 10, 0}, Stats{Count: 3, Average: 2, Min: -4, Max: 10, Sum: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calculate(tt.values); got != tt.want {
				t.Errorf("Calculate(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

func TestCalculateDoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Calculate(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestWeaponStats(t *testing.T) {
	weapons := []arcraiders.Item{
		weapon("a", f(10), nil, f(100)),
		weapon("b", f(30), nil, nil),
		weapon("c", nil, nil, f(50)),
	}

	got := WeaponStats(weapons)
	if got.Damage == nil || got.Damage.Count != 2 || got.Damage.Average != 20 {
		t.Errorf("Damage = %+v", got.Damage)
	}
	if got.FireRate != nil {
		t.Errorf("FireRate = %+v, want nil", got.FireRate)
	}
	if got.Range == nil || got.Range.Max != 100 || got.Range.Min != 50 {
		t.Errorf("Range = %+v", got.Range)
	}
}

func TestArmorStats(t *testing.T) {
	armor := []arcraiders.Item{
		{Name: "vest", ArmorStats: arcraiders.ArmorStats{ArmorValue: f(20)}},
		{Name: "helmet", ArmorStats: arcraiders.ArmorStats{ArmorValue: f(10)}},
		{Name: "bag"},
	}
	got := ArmorStats(armor)
	if got.Armor == nil || got.Armor.Count != 2 || got.Armor.Sum != 30 {
		t.Errorf("Armor = %+v", got.Armor)
	}

	if ArmorStats(nil).Armor != nil {
		t.Error("ArmorStats(nil).Armor should be nil")
	}
}

func TestRarityDistribution(t *testing.T) {
	items := []arcraiders.Item{
		{Rarity: arcraiders.RarityRare},
		{Rarity: arcraiders.RarityRare},
		{Rarity: arcraiders.RarityEpic},
		{},
	}
	got := RarityDistribution(items)
	want := map[string]int{"Rare": 2, "Epic": 1, "unknown": 1}
	if len(got) != len(want) {
		t.Fatalf("RarityDistribution() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %d, want %d", k, got[k], v)
		}
	}
}

func TestBestWeapon(t *testing.T) {
	weapons := []arcraiders.Item{
		weapon("first", f(40), f(5), nil),
		weapon("second", f(40), f(9), f(10)),
		weapon("third", nil, f(2), nil),
	}

	tests := []struct {
		criterion Criterion
		want      string
	}{
		{ByDamage, "first"},
		{ByFireRate, "second"},
		{ByRange, "second"},
	}
	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			got := BestWeapon(weapons, tt.criterion)
			if got == nil || got.Name != tt.want {
				t.Errorf("BestWeapon(%s) = %v, want %s", tt.criterion, got, tt.want)
			}
		})
	}

	if BestWeapon(nil, ByDamage) != nil {
		t.Error("BestWeapon(nil) should be nil")
	}
}

func TestBestWeaponAllMissing(t *testing.T) {
	weapons := []arcraiders.Item{weapon("a", nil, nil, nil), weapon("b", nil, nil, nil)}
	if got := BestWeapon(weapons, ByRange); got == nil || got.Name != "a" {
		t.Errorf("BestWeapon() = %v, want a", got)
	}
}

func TestBestArmor(t *testing.T) {
	armor := []arcraiders.Item{
		{Name: "light", ArmorStats: arcraiders.ArmorStats{ArmorValue: f(5)}},
		{Name: "heavy", ArmorStats: arcraiders.ArmorStats{ArmorValue: f(50)}},
	}
	if got := BestArmor(armor); got == nil || got.Name != "heavy" {
		t.Errorf("BestArmor() = %v, want heavy", got)
	}
	if BestArmor(nil) != nil {
		t.Error("BestArmor(nil) should be nil")
	}
}

func TestParseCriterion(t *testing.T) {
	for _, c := range Criteria {
		got, err := ParseCriterion(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCriterion(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := ParseCriterion("weight"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ParseCriterion(weight) error = %v, want INVALID_INPUT", err)
	}
}

func TestSummarize(t *testing.T) {
	weapons := []arcraiders.Item{weapon("kettle", f(12), nil, nil), weapon("anvil", f(40), nil, nil)}
	items := append([]arcraiders.Item{{Name: "wire", Rarity: arcraiders.RarityCommon}}, weapons...)

	r := Summarize(weapons, items)
	if r.Weapons.Total != 2 || r.Items.Total != 3 {
		t.Errorf("totals = %d, %d", r.Weapons.Total, r.Items.Total)
	}
	if r.Weapons.Best == nil || r.Weapons.Best.Name != "anvil" || *r.Weapons.Best.Damage != 40 {
		t.Errorf("Best = %+v", r.Weapons.Best)
	}
	if r.Items.RarityDistribution["unknown"] != 2 {
		t.Errorf("distribution = %v", r.Items.RarityDistribution)
	}

	if Summarize(nil, nil).Weapons.Best != nil {
		t.Error("empty Summarize should have no best weapon")
	}
}
