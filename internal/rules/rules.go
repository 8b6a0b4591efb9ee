package rules

import (
	"fmt"
	"strings"

	"deskorg/internal/keywords"
)

// Category and subfolder names produced by the built-in tables.
const (
	CategoryShortcuts     = "shortcuts"
	CategoryImages        = "images"
	CategoryVideos        = "videos"
	CategoryAudio         = "audio"
	CategoryArchives      = "archives"
	CategoryHTML          = "html files"
	CategoryStudy         = "study"
	CategoryBusinessTech  = "business and tech"
	CategoryWork          = "work"
	CategoryUncategorized = "uncategorized"

	SubWhatsApp        = "whatsapp"
	SubScreenshots     = "screenshots"
	SubCamera          = "camera"
	SubOther           = "other"
	SubCamScanner      = "camscanner"
	SubLanguageSection = "language section"
	SubMiscProjects    = "miscellaneous projects"
)

// Predicate tests a lower-cased file name.
type Predicate struct {
	Description string
	Match       func(lowerName string) bool
}

// Contains matches names containing substr (compared lower-case).
func Contains(substr string) Predicate {
	needle := strings.ToLower(substr)
	return Predicate{
		Description: fmt.Sprintf("name contains %q", needle),
		Match:       func(name string) bool { return strings.Contains(name, needle) },
	}
}

// HasPrefix matches names starting with prefix (compared lower-case).
func HasPrefix(prefix string) Predicate {
	needle := strings.ToLower(prefix)
	return Predicate{
		Description: fmt.Sprintf("name starts with %q", needle),
		Match:       func(name string) bool { return strings.HasPrefix(name, needle) },
	}
}

// Always matches every name; use it as the last sub-rule for a fallback.
func Always() Predicate {
	return Predicate{
		Description: "otherwise",
		Match:       func(string) bool { return true },
	}
}

// SubRule picks a subcategory when its predicate matches. A non-empty Primary
// reroutes the file to another category.
type SubRule struct {
	When        Predicate
	Primary     string
	Subcategory string
}

// ExtensionRule maps an extension group to a category. SubRules are tried in
// order; the first match wins and no match means no subcategory.
type ExtensionRule struct {
	Group      string
	Extensions []string
	Category   string
	SubRules   []SubRule
}

// Tier refines a content category. The strictly best set (earliest on ties)
// must score above zero for the tier to apply. With NameLeaf the winning set's
// label becomes the sub-subcategory.
type Tier struct {
	Subcategory string
	Sets        []keywords.Set
	NameLeaf    bool
}

// ContentRule is one keyword-scored top-level category. Declaration order is
// the tie-break order.
type ContentRule struct {
	Category string
	Keywords []string
	Tiers    []Tier
}

// Tables is the full rule set used by the classifier.
type Tables struct {
	Extension     []ExtensionRule
	Documents     []string
	Content       []ContentRule
	Uncategorized string

	byExtension map[string]int
	documents   map[string]struct{}
}

// Compile validates the tables and builds the lookup indexes. Extensions are
// lower-cased and given a leading dot.
func (t Tables) Compile() (Tables, error) {
	t.byExtension = make(map[string]int)
	t.documents = make(map[string]struct{})
	if strings.TrimSpace(t.Uncategorized) == "" {
		t.Uncategorized = CategoryUncategorized
	}
	for i, rule := range t.Extension {
		if strings.TrimSpace(rule.Category) == "" {
			return Tables{}, fmt.Errorf("extension rule %d (%s): category must be set", i, rule.Group)
		}
		for _, ext := range rule.Extensions {
			ext = normalizeExtension(ext)
			if ext == "" {
				continue
			}
			if prev, exists := t.byExtension[ext]; exists {
				return Tables{}, fmt.Errorf("extension %s listed in both %q and %q", ext, t.Extension[prev].Group, rule.Group)
			}
			t.byExtension[ext] = i
		}
		for j, sub := range rule.SubRules {
			if sub.When.Match == nil {
				return Tables{}, fmt.Errorf("extension rule %s: sub-rule %d has no predicate", rule.Group, j)
			}
		}
	}
	for _, ext := range t.Documents {
		ext = normalizeExtension(ext)
		if ext == "" {
			continue
		}
		if idx, exists := t.byExtension[ext]; exists {
			return Tables{}, fmt.Errorf("document extension %s also listed in %q", ext, t.Extension[idx].Group)
		}
		t.documents[ext] = struct{}{}
	}
	seen := make(map[string]struct{}, len(t.Content))
	for _, rule := range t.Content {
		if strings.TrimSpace(rule.Category) == "" {
			return Tables{}, fmt.Errorf("content rule: category must be set")
		}
		if _, dup := seen[rule.Category]; dup {
			return Tables{}, fmt.Errorf("content rule %q declared twice", rule.Category)
		}
		seen[rule.Category] = struct{}{}
		for _, tier := range rule.Tiers {
			if strings.TrimSpace(tier.Subcategory) == "" {
				return Tables{}, fmt.Errorf("content rule %q: tier subcategory must be set", rule.Category)
			}
			if len(tier.Sets) == 0 {
				return Tables{}, fmt.Errorf("content rule %q: tier %q has no keyword sets", rule.Category, tier.Subcategory)
			}
		}
	}
	return t, nil
}

// ExtensionRuleFor returns the extension rule covering ext.
func (t Tables) ExtensionRuleFor(ext string) (ExtensionRule, bool) {
	idx, ok := t.byExtension[normalizeExtension(ext)]
	if !ok {
		return ExtensionRule{}, false
	}
	return t.Extension[idx], true
}

// IsDocument reports whether ext is eligible for content scoring.
func (t Tables) IsDocument(ext string) bool {
	_, ok := t.documents[normalizeExtension(ext)]
	return ok
}

// ContentRuleFor returns the content rule named category.
func (t Tables) ContentRuleFor(category string) (ContentRule, bool) {
	for _, rule := range t.Content {
		if rule.Category == category {
			return rule, true
		}
	}
	return ContentRule{}, false
}

// Subdividable reports whether category may carry a subcategory under these
// tables.
func (t Tables) Subdividable(category string) bool {
	for _, rule := range t.Content {
		if rule.Category == category && len(rule.Tiers) > 0 {
			return true
		}
	}
	for _, rule := range t.Extension {
		for _, sub := range rule.SubRules {
			primary := sub.Primary
			if primary == "" {
				primary = rule.Category
			}
			if primary == category && sub.Subcategory != "" {
				return true
			}
		}
	}
	return false
}

// ContentSets returns the top-level content rules as keyword sets.
func (t Tables) ContentSets() []keywords.Set {
	sets := make([]keywords.Set, 0, len(t.Content))
	for _, rule := range t.Content {
		sets = append(sets, keywords.Set{Label: rule.Category, Keywords: rule.Keywords})
	}
	return sets
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
