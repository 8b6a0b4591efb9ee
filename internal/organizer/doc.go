// Package organizer walks a desktop directory and files every entry into a
// category folder.
//
// The Organizer lists the root once, skips directories and hidden or
// transient lock entries, classifies each file, and either reports the
// computed destination (dry run) or hands the file to the Mover. Per-file
// failures are recorded in the Report and the batch continues; configuration
// problems found before the first file abort the run.
//
// The Mover owns collision-safe relocation: it creates the destination
// folders, picks the first free "name_N.ext", and renames, falling back to a
// verified copy when the destination lives on another device.
package organizer
