package textutil

import (
	"path/filepath"
	"strings"
)

// separatorReplacer turns the filename word separators into spaces.
var separatorReplacer = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// Extension returns the lower-cased extension of name including the leading
// dot. Dotfiles without a further dot and names ending in a bare dot have no
// extension.
func Extension(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

// Stem returns the base name without its extension.
func Stem(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// NormalizeFilename strips the extension and replaces '_', '-' and '.' with
// spaces. All other runes are kept as-is.
func NormalizeFilename(name string) string {
	return separatorReplacer.Replace(Stem(name))
}

// ScoringText joins the normalized file name and extracted content with a
// single space; the name always comes first.
func ScoringText(name, content string) string {
	return NormalizeFilename(name) + " " + content
}
