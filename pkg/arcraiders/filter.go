package arcraiders

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Filter narrows a list request. All fields are optional; a nil *Filter is
// the same as an empty one.
//
// Multi-valued fields are sent comma-joined. Page and PageSize are pointers
// so that an explicit zero is sent rather than dropped; list methods on
// [Client] always override both.
type Filter struct {
	Rarity     []Rarity
	Type       []ItemType
	Difficulty []Difficulty
	Search     string
	Page       *int
	PageSize   *int
}

// Params is the normalized query parameter set of a request.
// Values are strings or ints.
type Params map[string]any

var rarities = map[string]Rarity{
	"common":    RarityCommon,
	"uncommon":  RarityUncommon,
	"rare":      RarityRare,
	"epic":      RarityEpic,
	"legendary": RarityLegendary,
}

// NormalizeRarity maps any casing of a known rarity to its canonical form.
// Unknown values are returned unchanged.
func NormalizeRarity(r Rarity) Rarity {
	if canonical, ok := rarities[cases.Fold().String(string(r))]; ok {
		return canonical
	}
	return r
}

// BuildParams converts f into query parameters. Fields that are unset in f
// are absent from the result.
func BuildParams(f *Filter) Params {
	p := Params{}
	if f == nil {
		return p
	}

	if len(f.Rarity) > 0 {
		parts := make([]string, len(f.Rarity))
		for i, r := range f.Rarity {
			parts[i] = string(NormalizeRarity(r))
		}
		p["rarity"] = strings.Join(parts, ",")
	}
	if len(f.Type) > 0 {
		p["type"] = join(f.Type)
	}
	if len(f.Difficulty) > 0 {
		p["difficulty"] = join(f.Difficulty)
	}
	if f.Search != "" {
		p["search"] = f.Search
	}
	if f.Page != nil {
		p["page"] = *f.Page
	}
	if f.PageSize != nil {
		p["pageSize"] = *f.PageSize
	}
	return p
}

func join[S ~string](values []S) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

// unpaged returns a copy of f without paging fields.
func (f *Filter) unpaged() Filter {
	if f == nil {
		return Filter{}
	}
	out := *f
	out.Page, out.PageSize = nil, nil
	return out
}

// withType returns a copy of f whose Type is forced to t.
func (f *Filter) withType(t ItemType) *Filter {
	out := f.unpaged()
	out.Type = []ItemType{t}
	return &out
}

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeMapName converts a display name like "Buried City" into the
// identifier the map endpoint expects ("buried-city").
func NormalizeMapName(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}
