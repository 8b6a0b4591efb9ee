// Package textutil provides filename helpers shared by the classifier and the
// mover.
//
// The primary use cases are:
//   - Splitting a file name into stem and lower-cased extension
//   - Normalizing a file name into a scoring signal (separators become spaces)
//   - Sanitizing folder and file names for safe filesystem use
//
// Normalization preserves every non-separator rune verbatim, so names written in
// Arabic, Cyrillic, or other scripts reach the keyword scorer unchanged.
package textutil
