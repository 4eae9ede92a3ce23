package domain

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// highlightPolicy keeps only the <mark> wrapper the highlighter emits.
var highlightPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("class").OnElements("mark")
	return p
}()

// BuildHighlightHTML renders the article content with every evidence
// sentence wrapped in <mark class="nc-negative">. Longer sentences are
// matched first so overlaps collapse onto the longest hit; everything else
// is escaped. Returns "" when nothing matches.
func BuildHighlightHTML(content string, evidences []string) string {
	if content == "" || len(evidences) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(evidences))
	evs := make([]string, 0, len(evidences))
	for _, e := range evidences {
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		evs = append(evs, e)
	}
	sort.Slice(evs, func(i, j int) bool { return len(evs[i]) > len(evs[j]) })

	type span struct{ start, end int }
	var ranges []span
	overlaps := func(a, b span) bool {
		return !(a.end <= b.start || b.end <= a.start)
	}

	for _, ev := range evs {
		from := 0
		for {
			i := strings.Index(content[from:], ev)
			if i < 0 {
				break
			}
			s := span{from + i, from + i + len(ev)}
			conflict := false
			for _, r := range ranges {
				if overlaps(s, r) {
					conflict = true
					break
				}
			}
			if conflict {
				from = s.start + 1
				continue
			}
			ranges = append(ranges, s)
			from = s.end
		}
	}
	if len(ranges) == 0 {
		return ""
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start < ranges[j].start })

	var b strings.Builder
	cur := 0
	for _, r := range ranges {
		if cur < r.start {
			b.WriteString(html.EscapeString(content[cur:r.start]))
		}
		fmt.Fprintf(&b, `<mark class="nc-negative">%s</mark>`, html.EscapeString(content[r.start:r.end]))
		cur = r.end
	}
	if cur < len(content) {
		b.WriteString(html.EscapeString(content[cur:]))
	}

	return highlightPolicy.Sanitize(b.String())
}

// ParseEvidenceList decodes evidence sentences stored either as a plain
// string or as a Postgres array literal ({"a","b"}). Best-effort: anything
// unparseable yields the raw string as a single sentence.
func ParseEvidenceList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return []string{s}
	}

	s = s[1 : len(s)-1]
	var parts []string
	var buf strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			inQuote = !inQuote
		case ',':
			if inQuote {
				buf.WriteByte(ch)
			} else {
				parts = append(parts, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteByte(ch)
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(p, `""`, `"`)
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
