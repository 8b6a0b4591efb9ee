// Package preflight provides readiness checks for the directories an
// organizer run depends on.
//
// These checks run in two contexts:
//   - The organizer driver calls Root before listing a directory. A failed
//     check aborts the run as a configuration error before any file moves.
//   - The CLI "deskorg rules" command prints the extraction capability check
//     alongside the active category tree.
package preflight
