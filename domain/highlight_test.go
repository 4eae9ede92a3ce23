package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildHighlightHTML(t *testing.T) {
	content := "markets fell sharply. analysts remain calm."

	got := BuildHighlightHTML(content, []string{"fell sharply"})
	require.Equal(t,
		`markets <mark class="nc-negative">fell sharply</mark>. analysts remain calm.`,
		got)
}

func TestBuildHighlightHTML_LongestEvidenceWins(t *testing.T) {
	content := "the central bank raised rates again"

	got := BuildHighlightHTML(content, []string{"raised", "raised rates again"})
	require.Equal(t,
		`the central bank <mark class="nc-negative">raised rates again</mark>`,
		got)
}

func TestBuildHighlightHTML_EscapesMarkup(t *testing.T) {
	content := `<b>bold claim</b> here`

	got := BuildHighlightHTML(content, []string{"bold claim"})
	require.NotContains(t, got, "<b>")
	require.Contains(t, got, `<mark class="nc-negative">bold claim</mark>`)
}

func TestBuildHighlightHTML_NoMatch(t *testing.T) {
	require.Empty(t, BuildHighlightHTML("some content", []string{"absent sentence"}))
	require.Empty(t, BuildHighlightHTML("", []string{"x"}))
	require.Empty(t, BuildHighlightHTML("content", nil))
}

func TestParseEvidenceList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "plain string", raw: "one sentence", want: []string{"one sentence"}},
		{
			name: "array literal",
			raw:  `{"first sentence","second sentence"}`,
			want: []string{"first sentence", "second sentence"},
		},
		{
			name: "quoted comma stays inside",
			raw:  `{"with, comma","plain"}`,
			want: []string{"with, comma", "plain"},
		},
		{
			name: "doubled quotes unescape",
			raw:  `{"she said ""no"""}`,
			want: []string{`she said "no"`},
		},
		{name: "blank entries dropped", raw: `{"",  ,"keep"}`, want: []string{"keep"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseEvidenceList(tt.raw))
		})
	}
}
