package domain

// AttitudeLookup resolves the attitude label and confidence for one article
// id. ok=false means the id is unknown or the lookup failed; the normalizer
// then leaves that element without attitude fields.
type AttitudeLookup func(articleID string) (attitude string, confidence *int, ok bool)

// recoArrayKeys is the ordered list of keys the recommender has used to
// wrap its item array, newest first.
var recoArrayKeys = []string{
	"recommendations",
	"related_topics",
	"similar_articles", // legacy
	"articles",         // legacy
	"items",            // legacy
}

// selfNestingKeys are the keys observed with one level of same-key
// self-nesting, e.g. {"recommendations": {"recommendations": [...]}}.
var selfNestingKeys = []string{"recommendations", "related_topics"}

// locateRecoArray finds the item array inside a decoded recommendation
// payload. Returns the map holding the array and the key it sits under,
// or (nil, "", arr) when the payload root itself is the array.
// A nil array result means no known shape matched.
func locateRecoArray(payload any) (parent map[string]any, key string, arr []any) {
	if list, ok := payload.([]any); ok {
		return nil, "", list
	}
	container, ok := payload.(map[string]any)
	if !ok {
		return nil, "", nil
	}
	for _, k := range recoArrayKeys {
		if list, ok := container[k].([]any); ok {
			return container, k, list
		}
	}
	for _, k := range selfNestingKeys {
		if inner, ok := container[k].(map[string]any); ok {
			if list, ok := inner[k].([]any); ok {
				return inner, k, list
			}
		}
	}
	return nil, "", nil
}

// NormalizeRecommendations rewrites a recommendation payload of any known
// shape so that every item is a record carrying attitude fields, keeping
// the surrounding structure byte-compatible. On any ambiguity the input is
// returned unchanged; this function never fails.
//
// Scalar items become {"article_id": v}; record items are shallow-copied.
// Attitude fields are injected per item via lookup; a failed lookup skips
// that item only.
func NormalizeRecommendations(payload any, lookup AttitudeLookup) any {
	if payload == nil {
		return payload
	}
	parent, key, arr := locateRecoArray(payload)
	if arr == nil {
		return payload
	}

	normalized := make([]any, 0, len(arr))
	ids := make([]string, 0, len(arr))
	for _, it := range arr {
		var obj map[string]any
		switch v := it.(type) {
		case map[string]any:
			obj = make(map[string]any, len(v)+2)
			for k, val := range v {
				obj[k] = val
			}
		case string:
			obj = map[string]any{"article_id": v}
		default:
			// numeric or other scalar identifier
			obj = map[string]any{"article_id": v}
		}
		if id, ok := recoItemID(obj); ok {
			ids = append(ids, id)
		}
		normalized = append(normalized, obj)
	}

	attitudes := make(map[string][2]any, len(ids))
	if lookup != nil {
		for _, id := range ids {
			if att, conf, ok := lookup(id); ok {
				attitudes[id] = [2]any{att, conf}
			}
		}
	}

	for _, it := range normalized {
		obj := it.(map[string]any)
		id, ok := recoItemID(obj)
		if !ok {
			continue
		}
		if pair, ok := attitudes[id]; ok {
			obj["attitude"] = pair[0]
			obj["attitude_confidence"] = pair[1]
		}
	}

	if parent == nil {
		return normalized
	}
	parent[key] = normalized
	return payload
}

func recoItemID(obj map[string]any) (string, bool) {
	if id, ok := obj["article_id"].(string); ok && id != "" {
		return id, true
	}
	if id, ok := obj["id"].(string); ok && id != "" {
		return id, true
	}
	return "", false
}
