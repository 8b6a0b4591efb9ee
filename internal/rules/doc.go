// Package rules holds the declarative tables that drive classification.
//
// Extension rules map extension groups to a category and an ordered list of
// file-name predicates that pick a subcategory (or reroute the file entirely,
// as camscanner archives are routed under work). Content rules list the
// keyword-scored categories in tie-break order, each optionally carrying
// nested tiers that refine the winner into subfolders.
//
// Adding a category, a language, or an extension group is a table edit; the
// classifier never changes.
package rules
