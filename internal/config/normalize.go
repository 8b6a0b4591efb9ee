package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeExtraction()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeKeywords()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Root) == "" {
		if value, ok := os.LookupEnv("DESKORG_ROOT"); ok {
			c.Paths.Root = strings.TrimSpace(value)
		}
	}
	if c.Paths.Root, err = expandPath(strings.TrimSpace(c.Paths.Root)); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	custom := make([]string, 0, len(c.Paths.CustomDesktopPaths))
	for i, candidate := range c.Paths.CustomDesktopPaths {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		expanded, err := expandPath(candidate)
		if err != nil {
			return fmt.Errorf("paths.custom_desktop_paths[%d]: %w", i, err)
		}
		custom = append(custom, expanded)
	}
	c.Paths.CustomDesktopPaths = custom
	return nil
}

func (c *Config) normalizeExtraction() {
	if c.Extraction.TextChars == 0 {
		c.Extraction.TextChars = defaultTextChars
	}
	if c.Extraction.PDFPages == 0 {
		c.Extraction.PDFPages = defaultPDFPages
	}
	if c.Extraction.DocxParagraphs == 0 {
		c.Extraction.DocxParagraphs = defaultDocxParagraphs
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

// normalizeKeywords trims and de-duplicates every list. An empty list falls
// back to the built-in table so a partial config only overrides what it names.
func (c *Config) normalizeKeywords() {
	defaults := DefaultKeywords()
	c.Keywords.Study = keywordsOrDefault(c.Keywords.Study, defaults.Study)
	c.Keywords.BusinessTech = keywordsOrDefault(c.Keywords.BusinessTech, defaults.BusinessTech)
	c.Keywords.Work = keywordsOrDefault(c.Keywords.Work, defaults.Work)
	c.Keywords.MiscProjects = keywordsOrDefault(c.Keywords.MiscProjects, defaults.MiscProjects)

	if len(c.Keywords.Languages) == 0 {
		c.Keywords.Languages = defaults.Languages
		return
	}
	langs := make([]LanguageKeywords, 0, len(c.Keywords.Languages))
	for _, lang := range c.Keywords.Languages {
		lang.Name = strings.ToLower(strings.TrimSpace(lang.Name))
		lang.Keywords = cleanKeywords(lang.Keywords)
		langs = append(langs, lang)
	}
	c.Keywords.Languages = langs
}

func keywordsOrDefault(values, fallback []string) []string {
	cleaned := cleanKeywords(values)
	if len(cleaned) == 0 {
		return fallback
	}
	return cleaned
}

func cleanKeywords(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
