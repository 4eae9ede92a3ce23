package domain

import "testing"

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name        string
		articleID   string
		rawCategory string
		want        Category
	}{
		{name: "eco prefix", articleID: "eco0012", rawCategory: "", want: CategoryEconomy},
		{name: "pol prefix", articleID: "pol9", rawCategory: "", want: CategoryPolitics},
		{name: "soc prefix", articleID: "soc123", rawCategory: "", want: CategorySociety},
		{name: "lif prefix maps to culture", articleID: "lif004", rawCategory: "", want: CategoryCulture},
		{name: "sci prefix", articleID: "sci777", rawCategory: "", want: CategoryScience},
		{name: "int prefix maps to world", articleID: "int001", rawCategory: "", want: CategoryWorld},
		{name: "prefix is case insensitive", articleID: "ECO555", rawCategory: "", want: CategoryEconomy},
		{
			name:        "prefix wins over stored category",
			articleID:   "eco0042",
			rawCategory: "Politics",
			want:        CategoryEconomy,
		},
		{name: "alias life/culture", articleID: "x1", rawCategory: "life/culture", want: CategoryCulture},
		{name: "alias IT/science", articleID: "x1", rawCategory: "IT/science", want: CategoryScience},
		{name: "alias bare IT", articleID: "x1", rawCategory: "IT", want: CategoryScience},
		{name: "alias international", articleID: "x1", rawCategory: "international", want: CategoryWorld},
		{name: "canonical passes through", articleID: "x1", rawCategory: "World", want: CategoryWorld},
		{name: "canonical case insensitive", articleID: "x1", rawCategory: "society", want: CategorySociety},
		{name: "alias trims whitespace", articleID: "x1", rawCategory: "  Economy ", want: CategoryEconomy},
		{name: "unknown category", articleID: "x1", rawCategory: "horoscope", want: CategoryOther},
		{name: "empty everything", articleID: "", rawCategory: "", want: CategoryOther},
		{name: "short id falls back to category", articleID: "ec", rawCategory: "Culture", want: CategoryCulture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCategory(tt.articleID, tt.rawCategory); got != tt.want {
				t.Errorf("ClassifyCategory(%q, %q) = %v, want %v", tt.articleID, tt.rawCategory, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 display categories, got %d", len(cats))
	}
	for _, c := range cats {
		if c == CategoryOther {
			t.Fatal("Other must not be a display category")
		}
		if !IsDisplayCategory(c) {
			t.Errorf("%v should be a display category", c)
		}
	}
	if IsDisplayCategory(CategoryOther) {
		t.Error("Other reported as display category")
	}
}

func TestQuotaForReadCounts(t *testing.T) {
	tests := []struct {
		readCount int
		want      int
	}{
		{0, 3}, {4, 3}, {5, 5}, {9, 5}, {10, 6}, {25, 6},
	}
	for _, tt := range tests {
		if got := QuotaFor(tt.readCount); got != tt.want {
			t.Errorf("QuotaFor(%d) = %d, want %d", tt.readCount, got, tt.want)
		}
	}
}
