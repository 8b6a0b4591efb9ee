// Package classify decides where a desktop file belongs.
//
// Classification runs in two phases. The extension phase consults the
// extension rule table and never reads file content; media, archives and
// shortcuts are decided from the name alone. Document extensions fall through
// to the content phase, which scores the normalized file name plus an
// extracted text sample against the content rule keyword sets.
//
// The classifier never fails. Extraction problems are absorbed by the content
// source and the worst outcome is the uncategorized result.
package classify
