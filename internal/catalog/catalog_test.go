package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noemalabs/noema/internal/domain"
)

func TestForLanguage(t *testing.T) {
	assert.Equal(t, "en", ForLanguage("en").Language)
	assert.Equal(t, "ru", ForLanguage("ru").Language)

	// Unsupported codes fall back to the default catalog.
	assert.Equal(t, DefaultLanguage, ForLanguage("fr").Language)
	assert.Equal(t, DefaultLanguage, ForLanguage("").Language)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("ru"))
	assert.False(t, Supported("fr"))
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	assert.Len(t, langs, 2)
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "ru")
}

func TestT_FallsBackToKey(t *testing.T) {
	cat := ForLanguage("en")
	assert.Equal(t, "no_such_key", cat.T("no_such_key"))
}

func TestDescription(t *testing.T) {
	cat := ForLanguage("en")
	assert.NotEmpty(t, cat.Description(domain.StrategyLinear))
	assert.NotEqual(t, cat.T("description_unavailable"), cat.Description(domain.StrategyLinear))
	assert.Equal(t, cat.T("description_unavailable"), cat.Description(domain.ThinkingStrategy("psychic")))
}

// Every heuristic assumes both catalogs carry the same shape of data; a
// missing table in one language would silently skew its analyses.
func TestCatalogsAreComplete(t *testing.T) {
	for _, lang := range Languages() {
		cat := ForLanguage(lang)

		assert.NotEmpty(t, cat.Biases, "%s biases", lang)
		assert.NotEmpty(t, cat.ContradictionPairs, "%s contradiction pairs", lang)
		assert.NotEmpty(t, cat.LogicalConnectors, "%s connectors", lang)
		assert.NotEmpty(t, cat.EvidencePatterns, "%s evidence patterns", lang)
		assert.NotEmpty(t, cat.UncertaintyMarkers, "%s uncertainty markers", lang)
		assert.NotEmpty(t, cat.CertaintyMarkers, "%s certainty markers", lang)
		assert.NotEmpty(t, cat.AmbiguityMarkers, "%s ambiguity markers", lang)
		assert.NotEmpty(t, cat.Domains, "%s domains", lang)

		for _, bias := range cat.Biases {
			assert.NotEmpty(t, bias.Markers, "%s bias %q markers", lang, bias.Name)
			assert.NotEmpty(t, bias.Context, "%s bias %q context", lang, bias.Name)
		}

		require.Len(t, cat.StrategyProfiles, 12, "%s strategy profiles", lang)
		for strategy, profile := range cat.StrategyProfiles {
			assert.NotEmpty(t, profile.Categories, "%s profile %s", lang, strategy)
		}
	}
}

func TestRussianFallsBackForMissingStrings(t *testing.T) {
	ru := ForLanguage("ru")
	// Whatever the Russian catalog resolves, it must never surface a bare
	// key for strings the English catalog defines.
	for _, key := range []string{"analysis_no_thoughts", "trend_improving", "domain_general"} {
		assert.NotEqual(t, key, ru.T(key))
	}
}
