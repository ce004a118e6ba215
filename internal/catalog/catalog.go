// Package catalog holds the per-language marker lists, patterns and display
// strings that drive every heuristic in the engine. The data is static; the
// engine never mutates it.
package catalog

import (
	"regexp"

	"github.com/noemalabs/noema/internal/domain"
)

// DefaultLanguage is used whenever a caller asks for an unsupported language.
const DefaultLanguage = "en"

// BiasPattern describes one cognitive bias: literal markers plus contextual
// cues. A bias is reported only when at least two markers and at least one
// cue match.
type BiasPattern struct {
	Name    string
	Markers []string
	Context []string
}

// WordPair is a (negative, positive) contradiction pair used by the
// consistency check.
type WordPair struct {
	Negative string
	Positive string
}

// BonusKind selects the strategy-specific secondary condition that can add a
// bonus sub-score during strategy scoring.
type BonusKind int

const (
	BonusNone BonusKind = iota
	// BonusPairedKeywords fires when both words of any pair appear.
	BonusPairedKeywords
	// BonusAnyKeyword fires when any listed word appears.
	BonusAnyKeyword
	// BonusPronounPeople fires when a pronoun and a people reference co-occur.
	BonusPronounPeople
	// BonusNoConcreteExamples fires when the text has no digits and none of
	// the listed negator words.
	BonusNoConcreteExamples
)

// BonusRule carries the data and score for one strategy's bonus condition.
type BonusRule struct {
	Kind       BonusKind
	Words      []string
	Pairs      []WordPair
	Pronouns   []string
	PeopleRefs []string
	Score      float64
}

// MarkerCategory is one named marker list inside a strategy profile. The
// slice form keeps category iteration deterministic.
type MarkerCategory struct {
	Name    string
	Markers []string
}

// StrategyProfile is the full scoring table for one thinking strategy.
type StrategyProfile struct {
	Categories []MarkerCategory
	Bonus      BonusRule
}

// DomainCategory maps a display-string key to its detection keywords.
// Categories are checked in order; the first hit wins.
type DomainCategory struct {
	Key      string
	Keywords []string
}

// Catalog bundles every language-specific input the analyzers consume.
type Catalog struct {
	Language string

	Biases             []BiasPattern
	ContradictionPairs []WordPair
	LogicalConnectors  []string
	EvidencePatterns   []*regexp.Regexp
	UncertaintyMarkers []string
	CertaintyMarkers   []string
	AmbiguityMarkers   []string
	PositiveWords      []string
	NegativeWords      []string
	Domains            []DomainCategory

	StrategyProfiles     map[domain.ThinkingStrategy]StrategyProfile
	StrategyDescriptions map[domain.ThinkingStrategy]string

	strings map[string]string
}

var catalogs = map[string]*Catalog{
	"en": english,
	"ru": russian,
}

// ForLanguage returns the catalog for the given language code, falling back
// to the default language for unsupported codes.
func ForLanguage(lang string) *Catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[DefaultLanguage]
}

// Supported reports whether the language code has its own catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Languages lists the supported language codes.
func Languages() []string {
	langs := make([]string, 0, len(catalogs))
	for lang := range catalogs {
		langs = append(langs, lang)
	}
	return langs
}

// T resolves a display string by key. Missing keys fall back to the default
// language, then to the key itself so a gap is visible rather than silent.
func (c *Catalog) T(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	if def := catalogs[DefaultLanguage]; def != c {
		if s, ok := def.strings[key]; ok {
			return s
		}
	}
	return key
}

// Description returns the human-readable description of a strategy.
func (c *Catalog) Description(s domain.ThinkingStrategy) string {
	if d, ok := c.StrategyDescriptions[s]; ok {
		return d
	}
	return c.T("description_unavailable")
}
