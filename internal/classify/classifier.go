package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"deskorg/internal/faults"
	"deskorg/internal/keywords"
	"deskorg/internal/logging"
	"deskorg/internal/rules"
	"deskorg/internal/textutil"
)

// ContentSource returns a bounded text sample for a file. Implementations
// absorb their own failures and return "" instead.
type ContentSource interface {
	Extract(ctx context.Context, path, ext string) string
}

// ContentSourceFunc adapts a function to ContentSource.
type ContentSourceFunc func(ctx context.Context, path, ext string) string

// Extract calls f.
func (f ContentSourceFunc) Extract(ctx context.Context, path, ext string) string {
	return f(ctx, path, ext)
}

// Classifier maps file entries to results using a rule table.
type Classifier struct {
	tables  rules.Tables
	content ContentSource
	logger  *slog.Logger
}

// New constructs a classifier. A nil content source scores file names only.
func New(tables rules.Tables, content ContentSource, logger *slog.Logger) *Classifier {
	if content == nil {
		content = ContentSourceFunc(func(context.Context, string, string) string { return "" })
	}
	return &Classifier{
		tables:  tables,
		content: content,
		logger:  logging.NewComponentLogger(logger, "classifier"),
	}
}

// Tables returns the rule tables in use.
func (c *Classifier) Tables() rules.Tables {
	return c.tables
}

// Classify returns the result for entry.
func (c *Classifier) Classify(ctx context.Context, entry FileEntry) Result {
	ext := entry.Ext
	if ext == "" {
		ext = textutil.Extension(entry.Name)
	}
	if _, ok := faults.FileFromContext(ctx); !ok {
		ctx = faults.WithFile(ctx, entry.Name)
	}
	logger := logging.WithContext(ctx, c.logger)

	if rule, ok := c.tables.ExtensionRuleFor(ext); ok {
		result := applyExtensionRule(rule, strings.ToLower(entry.Name))
		logDecision(logger, "classified by extension", result, "extension group "+rule.Group)
		return result
	}

	if !c.tables.IsDocument(ext) {
		result := Result{Primary: c.tables.Uncategorized}
		logDecision(logger, "classified by extension", result, "unknown extension",
			logging.String("extension", ext),
		)
		return result
	}

	content := c.content.Extract(ctx, entry.Path, ext)
	text := textutil.ScoringText(entry.Name, content)
	result, table := c.classifyContent(text)
	logDecision(logger, "classified by content", result, "keyword scores",
		logging.String("scores", table.String()),
		logging.Int("content_chars", utf8.RuneCountInString(content)),
	)
	return result
}

// Validate checks result against the structural invariants and the tables:
// a subcategory is only allowed under a category the tables subdivide.
func (c *Classifier) Validate(result Result) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if result.Subcategory != "" && !c.tables.Subdividable(result.Primary) {
		return fmt.Errorf("category %q has no subcategories, got %q", result.Primary, result.Subcategory)
	}
	return nil
}

func logDecision(logger *slog.Logger, msg string, result Result, reason string, extra ...logging.Attr) {
	attrs := logging.DecisionAttrs("classification", result.Display(), reason)
	attrs = append(attrs, extra...)
	logger.Debug(msg, logging.Args(attrs...)...)
}

func applyExtensionRule(rule rules.ExtensionRule, lowerName string) Result {
	for _, sub := range rule.SubRules {
		if !sub.When.Match(lowerName) {
			continue
		}
		primary := rule.Category
		if sub.Primary != "" {
			primary = sub.Primary
		}
		return Result{Primary: primary, Subcategory: sub.Subcategory}
	}
	return Result{Primary: rule.Category}
}

func (c *Classifier) classifyContent(text string) (Result, keywords.Table) {
	table := keywords.ScoreSets(text, c.tables.ContentSets())
	winner, best, ok := table.Best()
	if !ok || best == 0 {
		return Result{Primary: c.tables.Uncategorized}, table
	}
	result := Result{Primary: winner}
	rule, _ := c.tables.ContentRuleFor(winner)
	for _, tier := range rule.Tiers {
		label, score, ok := keywords.ScoreSets(text, tier.Sets).Best()
		if !ok || score == 0 {
			continue
		}
		result.Subcategory = tier.Subcategory
		if tier.NameLeaf {
			result.SubSubcategory = label
		}
		break
	}
	return result, table
}
