// Package flags resolves the nationality strings of the lineup feed to flag
// glyphs. The feed's country names are not ISO: a fixed override table
// handles the home nations and the politically-renamed entries, the rest is
// best-effort resolution against the English region names of CLDR.
package flags

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/fortuna/pitchside/internal/statsbomb"
)

// Unknown is rendered when a nationality cannot be resolved.
const Unknown = "\U0001F3F3\uFE0F" // white flag

// overrides pins feed spellings that CLDR does not resolve, or that need a
// non-ISO glyph (the UK home nations have their own pennants). Values are
// either a finished glyph or a two-letter region code.
var overrides = map[string]string{
	"England":                          "\U0001F3F4\U000E0067\U000E0062\U000E0065\U000E006E\U000E0067\U000E007F",
	"Wales":                            "\U0001F3F4\U000E0067\U000E0062\U000E0077\U000E006C\U000E0073\U000E007F",
	"Scotland":                         "\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F",
	"Northern Ireland":                 "\U0001F1EC\U0001F1E7",
	"Korea Republic":                   "KR",
	"Côte d'Ivoire":                    "CI",
	"Bosnia and Herzegovina":           "BA",
	"Republic of Ireland":              "IE",
	"USA":                              "US",
	"Russia":                           "RU",
	"Turkey":                           "TR",
	"Iran, Islamic Republic of":        "IR",
	"Venezuela":                        "VE",
	"Syria":                            "SY",
	"Democratic Republic of the Congo": "CD",
	"Serbia":                           "RS",
	"Croatia":                          "HR",
}

var (
	indexOnce   sync.Once
	regionIndex map[string]string // lowercased English region name -> alpha-2
	regionNames []string          // sorted keys of regionIndex, for the loose pass
)

// Emoji returns the flag glyph for a country name, or Unknown.
func Emoji(country string) string {
	if country == "" {
		return Unknown
	}

	code, ok := overrides[country]
	if !ok {
		code = lookupRegion(country)
	}
	if code == "" {
		return Unknown
	}

	if len(code) == 2 {
		return regionalIndicators(code)
	}
	return code
}

// PlayerFlags builds the player-name to flag-glyph map for both lineups.
func PlayerFlags(lineups []statsbomb.TeamLineup) map[string]string {
	out := make(map[string]string)
	for _, team := range lineups {
		for _, p := range team.Lineup {
			out[p.PlayerName] = Emoji(p.CountryName())
		}
	}
	return out
}

// lookupRegion resolves a country name to its alpha-2 code via the English
// CLDR region names: exact match first, then a loose containment pass. The
// loose pass is a deliberate best-effort heuristic for the long tail of
// feed spellings.
func lookupRegion(country string) string {
	indexOnce.Do(buildRegionIndex)

	needle := strings.ToLower(strings.TrimSpace(country))
	if code, ok := regionIndex[needle]; ok {
		return code
	}

	for _, name := range regionNames {
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return regionIndex[name]
		}
	}
	return ""
}

func buildRegionIndex() {
	regionIndex = make(map[string]string)
	namer := display.Regions(language.English)

	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			region, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !region.IsCountry() {
				continue
			}
			name := namer.Name(region)
			if name == "" {
				continue
			}
			regionIndex[strings.ToLower(name)] = region.String()
		}
	}

	regionNames = make([]string, 0, len(regionIndex))
	for name := range regionIndex {
		regionNames = append(regionNames, name)
	}
	sort.Strings(regionNames)
}

// regionalIndicators maps a two-letter code onto the flag-emoji plane.
func regionalIndicators(code string) string {
	const offset = 127397 // 'A' -> REGIONAL INDICATOR SYMBOL LETTER A
	code = strings.ToUpper(code)
	return string([]rune{rune(code[0]) + offset, rune(code[1]) + offset})
}
