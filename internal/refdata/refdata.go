// Package refdata holds the static state reference table used to label and
// color map regions.
package refdata

import "strings"

// Category is a state's political leaning, used for color coding.
type Category string

const (
	Red     Category = "red"
	Blue    Category = "blue"
	Purple  Category = "purple"
	Neutral Category = "neutral"
)

type State struct {
	Code        string // two-letter abbreviation, lower case
	Name        string
	DisplayName string
	FIPS        string // joins against topology feature ids
	Category    Category
}

// Colors is a fill/stroke/text triple in hex.
type Colors struct {
	Fill   string
	Stroke string
	Text   string
}

// Unknown is used for regions missing from the table.
var Unknown = Colors{Fill: "#d6d6da", Stroke: "#ffffff", Text: "#6b7280"}

var palette = map[Category]Colors{
	Red:     {Fill: "#dc2626", Stroke: "#991b1b", Text: "#dc2626"},
	Blue:    {Fill: "#2563eb", Stroke: "#1e40af", Text: "#2563eb"},
	Purple:  {Fill: "#9333ea", Stroke: "#6b21a8", Text: "#9333ea"},
	Neutral: {Fill: "#6b7280", Stroke: "#374151", Text: "#6b7280"},
}

var (
	byCode = map[string]State{}
	byFIPS = map[string]State{}
)

func init() {
	for _, s := range states {
		byCode[s.Code] = s
		byFIPS[s.FIPS] = s
	}
}

// States returns the full table in FIPS order.
func States() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

// ByCode looks a state up by abbreviation, case-insensitively.
func ByCode(code string) (State, bool) {
	s, ok := byCode[strings.ToLower(code)]
	return s, ok
}

func ByFIPS(fips string) (State, bool) {
	s, ok := byFIPS[fips]
	return s, ok
}

// ColorsFor returns the palette entry for a category, or Unknown.
func ColorsFor(c Category) Colors {
	if col, ok := palette[c]; ok {
		return col
	}
	return Unknown
}

// ColorsForFIPS resolves a region id straight to colors. Unknown ids get the
// neutral Unknown colors rather than an error.
func ColorsForFIPS(fips string) Colors {
	s, ok := ByFIPS(fips)
	if !ok {
		return Unknown
	}
	return ColorsFor(s.Category)
}

// ByCategory groups the table by political leaning.
func ByCategory() map[Category][]State {
	out := map[Category][]State{}
	for _, s := range states {
		out[s.Category] = append(out[s.Category], s)
	}
	return out
}

// DistrictCount returns the number of congressional districts, 0 when the
// state is unknown or has no voting representation.
func DistrictCount(code string) int {
	return districtCounts[strings.ToLower(code)]
}

// IsAtLarge reports whether the state elects a single representative.
func IsAtLarge(code string) bool {
	return DistrictCount(code) == 1
}

// DistrictsForState lists district numbers: 1..n, or [0] for at-large
// states. Unknown states return nil.
func DistrictsForState(code string) []int {
	n := DistrictCount(code)
	switch n {
	case 0:
		return nil
	case 1:
		return []int{0}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
