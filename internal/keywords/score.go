package keywords

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Set is a labelled keyword list.
type Set struct {
	Label    string
	Keywords []string
}

// Score counts how many distinct keywords occur in text.
func Score(text string, keywords []string) int {
	return score(fold(text), keywords)
}

func score(folded string, keywords []string) int {
	count := 0
	seen := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		k := fold(keyword)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if strings.Contains(folded, k) {
			count++
		}
	}
	return count
}

func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Table holds per-label scores for one text, in declaration order.
type Table struct {
	labels []string
	scores map[string]int
}

// ScoreSets scores text against every set. The text is folded once.
func ScoreSets(text string, sets []Set) Table {
	folded := fold(text)
	table := Table{
		labels: make([]string, 0, len(sets)),
		scores: make(map[string]int, len(sets)),
	}
	for _, set := range sets {
		if _, exists := table.scores[set.Label]; !exists {
			table.labels = append(table.labels, set.Label)
		}
		table.scores[set.Label] = score(folded, set.Keywords)
	}
	return table
}

// Get returns the score recorded for label.
func (t Table) Get(label string) int {
	return t.scores[label]
}

// Best returns the label with the strictly greatest score. Among equal scores
// the earliest declared label wins. ok is false for an empty table.
func (t Table) Best() (label string, value int, ok bool) {
	for _, candidate := range t.labels {
		s := t.scores[candidate]
		if !ok || s > value {
			label, value, ok = candidate, s, true
		}
	}
	return label, value, ok
}

// String renders the table as "label=score" pairs for logging.
func (t Table) String() string {
	parts := make([]string, 0, len(t.labels))
	for _, label := range t.labels {
		parts = append(parts, label+"="+strconv.Itoa(t.scores[label]))
	}
	return strings.Join(parts, ", ")
}
