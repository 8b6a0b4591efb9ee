package organizer

import (
	"sort"
	"time"

	"deskorg/internal/classify"
	"deskorg/internal/preflight"
)

// Decision records what happened to one file.
type Decision struct {
	Name        string          `json:"name"`
	Source      string          `json:"source"`
	Result      classify.Result `json:"result"`
	Destination string          `json:"destination"`
	FinalPath   string          `json:"final_path,omitempty"`
	Moved       bool            `json:"moved"`
	Renamed     bool            `json:"renamed,omitempty"`
}

// FileError records a per-file failure. The file stays where it was.
type FileError struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Err  error  `json:"-"`
}

func (e FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// CategoryCount is one row of the per-category summary.
type CategoryCount struct {
	Category string
	Files    int
}

// Report summarizes a run.
type Report struct {
	RunID      string             `json:"run_id"`
	Root       string             `json:"root"`
	DryRun     bool               `json:"dry_run"`
	Checks     []preflight.Result `json:"checks,omitempty"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Decisions  []Decision         `json:"decisions"`
	Counts     map[string]int     `json:"counts"`
	Skipped    []string           `json:"skipped,omitempty"`
	Errors     []FileError        `json:"-"`
	Canceled   bool               `json:"canceled,omitempty"`
}

func newReport(runID, root string, dryRun bool, started time.Time) *Report {
	return &Report{
		RunID:     runID,
		Root:      root,
		DryRun:    dryRun,
		StartedAt: started,
		Counts:    make(map[string]int),
	}
}

func (r *Report) record(d Decision) {
	r.Decisions = append(r.Decisions, d)
	r.Counts[d.Result.Primary]++
}

// Moved returns how many files were relocated.
func (r *Report) Moved() int {
	moved := 0
	for _, d := range r.Decisions {
		if d.Moved {
			moved++
		}
	}
	return moved
}

// Processed returns how many files were classified.
func (r *Report) Processed() int {
	return len(r.Decisions)
}

// SortedCounts returns the per-category counts, largest first and then by
// name.
func (r *Report) SortedCounts() []CategoryCount {
	rows := make([]CategoryCount, 0, len(r.Counts))
	for category, files := range r.Counts {
		rows = append(rows, CategoryCount{Category: category, Files: files})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Files != rows[j].Files {
			return rows[i].Files > rows[j].Files
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// Duration returns how long the run took.
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
