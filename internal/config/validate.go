package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExtraction(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateKeywords(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateExtraction() error {
	if c.Extraction.TextChars < 0 {
		return errors.New("extraction.text_chars must be positive")
	}
	if c.Extraction.PDFPages < 0 {
		return errors.New("extraction.pdf_pages must be positive")
	}
	if c.Extraction.DocxParagraphs < 0 {
		return errors.New("extraction.docx_paragraphs must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateKeywords() error {
	seen := make(map[string]struct{}, len(c.Keywords.Languages))
	for i, lang := range c.Keywords.Languages {
		if lang.Name == "" {
			return fmt.Errorf("keywords.languages[%d].name must be set", i)
		}
		if _, exists := seen[lang.Name]; exists {
			return fmt.Errorf("keywords.languages: duplicate language %q", lang.Name)
		}
		seen[lang.Name] = struct{}{}
		if len(lang.Keywords) == 0 {
			return fmt.Errorf("keywords.languages[%d] (%s) has no keywords", i, lang.Name)
		}
	}
	return nil
}
