package arcraiders

import (
	"reflect"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   Params
	}{
		{"nil filter", nil, Params{}},
		{"empty filter", &Filter{}, Params{}},
		{
			name:   "rarity normalized and joined",
			filter: &Filter{Rarity: []Rarity{"rare", "EPIC", "Mythic"}},
			want:   Params{"rarity": "Rare,Epic,Mythic"},
		},
		{
			name:   "type and difficulty verbatim",
			filter: &Filter{Type: []ItemType{TypeWeapon, "Armor"}, Difficulty: []Difficulty{DifficultyHard, DifficultyEasy}},
			want:   Params{"type": "weapon,Armor", "difficulty": "hard,easy"},
		},
		{
			name:   "search verbatim",
			filter: &Filter{Search: "  Kettle "},
			want:   Params{"search": "  Kettle "},
		},
		{
			name:   "zero page preserved",
			filter: &Filter{Page: intPtr(0), PageSize: intPtr(0)},
			want:   Params{"page": 0, "pageSize": 0},
		},
		{
			name: "all fields",
			filter: &Filter{
				Rarity:   []Rarity{"legendary"},
				Type:     []ItemType{TypeArmor},
				Search:   "vest",
				Page:     intPtr(2),
				PageSize: intPtr(50),
			},
			want: Params{"rarity": "Legendary", "type": "armor", "search": "vest", "page": 2, "pageSize": 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildParams(tt.filter)
			if got == nil {
				t.Fatal("BuildParams() returned nil map")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildParams() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildParams_EmptySlicesOmitted(t *testing.T) {
	got := BuildParams(&Filter{Rarity: []Rarity{}, Type: nil, Difficulty: []Difficulty{}})
	if len(got) != 0 {
		t.Errorf("BuildParams() = %v, want empty", got)
	}
}

func TestNormalizeRarity(t *testing.T) {
	tests := []struct {
		in   Rarity
		want Rarity
	}{
		{"common", RarityCommon},
		{"UNCOMMON", RarityUncommon},
		{"rArE", RarityRare},
		{"Epic", RarityEpic},
		{"legendary", RarityLegendary},
		{"mythic", "mythic"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got := NormalizeRarity(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeRarity(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeRarity(got); again != got {
				t.Errorf("NormalizeRarity not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestFilterNotModified(t *testing.T) {
	f := &Filter{Type: []ItemType{TypeMaterial}, Page: intPtr(3)}

	w := f.withType(TypeWeapon)
	if w.Page != nil {
		t.Error("withType should drop paging")
	}
	if f.Type[0] != TypeMaterial || f.Page == nil || *f.Page != 3 {
		t.Errorf("original filter changed: %+v", f)
	}

	var nilFilter *Filter
	if got := nilFilter.withType(TypeArmor); len(got.Type) != 1 || got.Type[0] != TypeArmor {
		t.Errorf("nil.withType() = %+v", got)
	}
}

func TestNormalizeMapName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dam", "dam"},
		{"Buried City", "buried-city"},
		{"Blue\tGate", "blue-gate"},
		{"SPACEPORT", "spaceport"},
		{"a   b  c", "a-b-c"},
	}

	for _, tt := range tests {
		if got := NormalizeMapName(tt.in); got != tt.want {
			t.Errorf("NormalizeMapName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
