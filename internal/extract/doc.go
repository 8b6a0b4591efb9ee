// Package extract produces bounded text samples from desktop files.
//
// The Extractor dispatches on the lower-cased extension. Plain text formats
// are decoded directly; PDF and Word bodies go through Reader
// implementations injected at construction so a build without a format
// reader still classifies by name. Every failure is absorbed: callers always
// get a string, possibly empty, and the failure is logged at debug level.
// Files the extractor has no reader for yield their base name without the
// extension.
package extract
