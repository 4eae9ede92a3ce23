package domain

import "strings"

// Category is one of the canonical display labels plus the implicit Other
// bucket for anything the classifier cannot place.
type Category string

const (
	CategoryEconomy  Category = "Economy"
	CategoryPolitics Category = "Politics"
	CategorySociety  Category = "Society"
	CategoryCulture  Category = "Culture"
	CategoryWorld    Category = "World"
	CategoryScience  Category = "Science"
	CategoryOther    Category = "Other"
)

// displayCategories is the fixed section order. Other is deliberately
// absent: it never gets a feed section.
var displayCategories = []Category{
	CategoryEconomy,
	CategoryPolitics,
	CategorySociety,
	CategoryCulture,
	CategoryWorld,
	CategoryScience,
}

// Categories returns the 6 canonical display categories in fixed order.
// Callers must not mutate the returned slice.
func Categories() []Category {
	return displayCategories
}

// idPrefixCategories maps scraper-assigned article id prefixes to their
// category. The scraper encodes the desk in the id, which is more reliable
// than the free-form category column, so prefixes win.
var idPrefixCategories = map[string]Category{
	"eco": CategoryEconomy,
	"pol": CategoryPolitics,
	"soc": CategorySociety,
	"lif": CategoryCulture,
	"sci": CategoryScience,
	"int": CategoryWorld,
}

// categoryAliases normalizes the raw category strings upstream sources use.
var categoryAliases = map[string]Category{
	"economy":       CategoryEconomy,
	"politics":      CategoryPolitics,
	"society":       CategorySociety,
	"culture":       CategoryCulture,
	"life/culture":  CategoryCulture,
	"science":       CategoryScience,
	"it/science":    CategoryScience,
	"it":            CategoryScience,
	"world":         CategoryWorld,
	"international": CategoryWorld,
}

// ClassifyCategory maps an article onto a canonical category.
// Precedence: id prefix, then raw-category alias, then raw category that
// already is a canonical label, then Other. Total: never fails.
func ClassifyCategory(articleID, rawCategory string) Category {
	if len(articleID) >= 3 {
		if c, ok := idPrefixCategories[strings.ToLower(articleID[:3])]; ok {
			return c
		}
	}
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(rawCategory))]; ok {
		return c
	}
	return CategoryOther
}

// CategoryFromString resolves a user-supplied category filter value to a
// canonical category. Accepts canonical labels and raw-category aliases.
func CategoryFromString(s string) (Category, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "", false
	}
	if c, ok := categoryAliases[v]; ok {
		return c, true
	}
	if v == "other" {
		return CategoryOther, true
	}
	return "", false
}

// PrefixesFor returns the article-id prefixes that classify into c, in
// stable order. Useful for pushing a category filter into SQL.
func PrefixesFor(c Category) []string {
	var out []string
	for _, p := range []string{"eco", "pol", "soc", "lif", "sci", "int"} {
		if idPrefixCategories[p] == c {
			out = append(out, p)
		}
	}
	return out
}

// AllPrefixes returns every known article-id prefix, in stable order.
func AllPrefixes() []string {
	return []string{"eco", "pol", "soc", "lif", "sci", "int"}
}

// AliasesFor returns the lowercased raw-category values that classify
// into c, in stable order.
func AliasesFor(c Category) []string {
	var out []string
	for _, a := range aliasOrder {
		if categoryAliases[a] == c {
			out = append(out, a)
		}
	}
	return out
}

// AllAliases returns every recognized raw-category value, in stable order.
func AllAliases() []string {
	out := make([]string, len(aliasOrder))
	copy(out, aliasOrder)
	return out
}

var aliasOrder = []string{
	"economy", "politics", "society", "culture", "life/culture",
	"science", "it/science", "it", "world", "international",
}

// IsDisplayCategory reports whether c is one of the 6 feed sections.
func IsDisplayCategory(c Category) bool {
	for _, d := range displayCategories {
		if c == d {
			return true
		}
	}
	return false
}
