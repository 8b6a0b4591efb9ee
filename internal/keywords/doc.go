// Package keywords scores text against named keyword lists.
//
// A keyword contributes at most one point no matter how often it appears or how
// often it is listed. Matching is case-insensitive substring containment over
// NFC-normalized text, so decomposed file names (as produced by some
// filesystems) match composed keywords.
package keywords
