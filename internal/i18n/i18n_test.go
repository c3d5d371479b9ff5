package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	require.Equal(t, Kannada, Parse("kn"))
	require.Equal(t, Kannada, Parse("KN"))
	require.Equal(t, English, Parse("en"))
	require.Equal(t, English, Parse(""))
	require.Equal(t, English, Parse("fr"))
}

func TestPick_KannadaFallsBackToEnglish(t *testing.T) {
	require.Equal(t, "ಹಬ್ಬ", Pick(Kannada, "Festival", "ಹಬ್ಬ"))
	require.Equal(t, "Festival", Pick(Kannada, "Festival", ""))
	require.Equal(t, "Festival", Pick(English, "Festival", "ಹಬ್ಬ"))
}

func TestPick_EnglishNeverFallsBackToKannada(t *testing.T) {
	// A record with only Kannada text renders empty in English mode.
	require.Equal(t, "", Pick(English, "", "ಹಬ್ಬ"))
}

func TestSelect(t *testing.T) {
	record := map[string]any{
		"title":   "Festival",
		"title_k": "ಹಬ್ಬ",
	}
	require.Equal(t, "ಹಬ್ಬ", Select(record, "title", Kannada))
	require.Equal(t, "Festival", Select(record, "title", English))

	delete(record, "title_k")
	require.Equal(t, "Festival", Select(record, "title", Kannada))
}

func TestSelect_MissingAndNonStringValues(t *testing.T) {
	require.Equal(t, "", Select(nil, "title", Kannada))
	require.Equal(t, "", Select(map[string]any{}, "title", English))
	require.Equal(t, "", Select(map[string]any{"title": 42}, "title", English))
	require.Equal(t, "Festival", Select(map[string]any{"title": "Festival", "title_k": 42}, "title", Kannada))
}

func TestActiveLanguage(t *testing.T) {
	SetActive(Kannada)
	require.Equal(t, Kannada, Active())
	SetActive(English)
	require.Equal(t, English, Active())
}
