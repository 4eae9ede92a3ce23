package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func staticLookup(m map[string]string) AttitudeLookup {
	return func(id string) (string, *int, bool) {
		att, ok := m[id]
		if !ok {
			return "", nil, false
		}
		conf := 90
		return att, &conf, true
	}
}

func TestNormalizeRecommendations_BareArray(t *testing.T) {
	payload := []any{"eco001", map[string]any{"id": "pol002", "title": "t"}}
	lookup := staticLookup(map[string]string{"eco001": AttitudeFavorable, "pol002": AttitudeCritical})

	got := NormalizeRecommendations(payload, lookup)

	arr, ok := got.([]any)
	require.True(t, ok, "root array payload must come back as an array")
	require.Len(t, arr, 2)

	first := arr[0].(map[string]any)
	require.Equal(t, "eco001", first["article_id"])
	require.Equal(t, AttitudeFavorable, first["attitude"])

	second := arr[1].(map[string]any)
	require.Equal(t, "pol002", second["id"])
	require.Equal(t, "t", second["title"])
	require.Equal(t, AttitudeCritical, second["attitude"])
}

func TestNormalizeRecommendations_SingleKey(t *testing.T) {
	payload := map[string]any{
		"recommendations": []any{"eco001"},
		"model_version":   "v3",
	}

	got := NormalizeRecommendations(payload, staticLookup(map[string]string{"eco001": AttitudeNeutral}))

	m := got.(map[string]any)
	require.Equal(t, "v3", m["model_version"], "sibling keys must be preserved")
	items := m["recommendations"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, AttitudeNeutral, items[0].(map[string]any)["attitude"])
}

func TestNormalizeRecommendations_DoubleNested(t *testing.T) {
	payload := map[string]any{
		"related_topics": map[string]any{
			"related_topics": []any{"sci004"},
			"score":          0.8,
		},
	}

	got := NormalizeRecommendations(payload, staticLookup(map[string]string{"sci004": AttitudeFavorable}))

	outer := got.(map[string]any)
	inner := outer["related_topics"].(map[string]any)
	require.Equal(t, 0.8, inner["score"], "inner sibling keys must survive")
	items := inner["related_topics"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, "sci004", items[0].(map[string]any)["article_id"])
	require.Equal(t, AttitudeFavorable, items[0].(map[string]any)["attitude"])
}

func TestNormalizeRecommendations_LegacyKeys(t *testing.T) {
	for _, key := range []string{"similar_articles", "articles", "items"} {
		payload := map[string]any{key: []any{map[string]any{"article_id": "int009"}}}

		got := NormalizeRecommendations(payload, staticLookup(map[string]string{"int009": AttitudeCritical}))

		items := got.(map[string]any)[key].([]any)
		require.Len(t, items, 1, key)
		require.Equal(t, AttitudeCritical, items[0].(map[string]any)["attitude"], key)
	}
}

func TestNormalizeRecommendations_UnknownShapeIsNoop(t *testing.T) {
	payloads := []any{
		nil,
		"just a string",
		42,
		map[string]any{"foo": "bar"},
		map[string]any{"recommendations": "not-an-array"},
	}
	for _, p := range payloads {
		require.Equal(t, p, NormalizeRecommendations(p, staticLookup(nil)))
	}
}

func TestNormalizeRecommendations_PartialLookupFailure(t *testing.T) {
	payload := map[string]any{"items": []any{"eco001", "ghost999"}}

	got := NormalizeRecommendations(payload, staticLookup(map[string]string{"eco001": AttitudeNeutral}))

	items := got.(map[string]any)["items"].([]any)
	require.Len(t, items, 2)

	withAtt := items[0].(map[string]any)
	require.Contains(t, withAtt, "attitude")

	without := items[1].(map[string]any)
	require.Equal(t, "ghost999", without["article_id"])
	require.NotContains(t, without, "attitude", "failed lookup must omit fields, not abort")
}

func TestNormalizeRecommendations_NilLookup(t *testing.T) {
	payload := map[string]any{"items": []any{"eco001"}}
	got := NormalizeRecommendations(payload, nil)
	items := got.(map[string]any)["items"].([]any)
	require.Equal(t, "eco001", items[0].(map[string]any)["article_id"])
}

func TestNormalizeRecommendations_DoesNotMutateSourceRecords(t *testing.T) {
	original := map[string]any{"article_id": "eco001", "title": "t"}
	payload := []any{original}

	NormalizeRecommendations(payload, staticLookup(map[string]string{"eco001": AttitudeFavorable}))

	require.NotContains(t, original, "attitude", "item records must be shallow-copied")
}
