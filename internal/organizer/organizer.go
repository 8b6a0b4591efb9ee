package organizer

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"deskorg/internal/classify"
	"deskorg/internal/faults"
	"deskorg/internal/logging"
	"deskorg/internal/preflight"
	"deskorg/internal/textutil"
)

// Classifier assigns a result to a file entry.
type Classifier interface {
	Classify(ctx context.Context, entry classify.FileEntry) classify.Result
}

// Placer relocates a file into a directory and returns its final path.
type Placer interface {
	Place(ctx context.Context, src, destDir string) (string, error)
}

// Checker returns the preflight results for a run against root.
type Checker func(fs afero.Fs, root string, apply bool) []preflight.Result

// RootChecker only checks the root directory itself.
func RootChecker(fs afero.Fs, root string, apply bool) []preflight.Result {
	return []preflight.Result{preflight.Root(fs, root, apply)}
}

// resultValidator is implemented by classifiers that can check a result
// against their own rule tables.
type resultValidator interface {
	Validate(result classify.Result) error
}

// Options selects the directory and mode of one run.
type Options struct {
	Root  string
	Apply bool
}

// Organizer drives one pass over a directory.
type Organizer struct {
	fs         afero.Fs
	classifier Classifier
	mover      Placer
	logger     *slog.Logger
	locker     Locker
	checker    Checker
	now        func() time.Time
	newID      func() string
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithLocker installs the lock taken on the root in apply mode.
func WithLocker(l Locker) Option {
	return func(o *Organizer) { o.locker = l }
}

// WithChecker replaces the preflight checks run before any file is touched.
func WithChecker(c Checker) Option {
	return func(o *Organizer) {
		if c != nil {
			o.checker = c
		}
	}
}

// withClock overrides the time source used for report timestamps.
func withClock(now func() time.Time) Option {
	return func(o *Organizer) {
		if now != nil {
			o.now = now
		}
	}
}

// New constructs an Organizer. A nil mover gets a Mover on fs.
func New(fs afero.Fs, classifier Classifier, mover Placer, logger *slog.Logger, opts ...Option) *Organizer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if mover == nil {
		mover = NewMover(fs, logger)
	}
	o := &Organizer{
		fs:         fs,
		classifier: classifier,
		mover:      mover,
		logger:     logging.NewComponentLogger(logger, "organizer"),
		checker:    RootChecker,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Run organizes opts.Root. Without Apply nothing on disk changes and each
// decision carries the destination the file would move to. Per-file failures
// are collected in the report; a fatal failure stops the batch and is returned
// together with the partial report.
func (o *Organizer) Run(ctx context.Context, opts Options) (*Report, error) {
	root := filepath.Clean(strings.TrimSpace(opts.Root))
	if strings.TrimSpace(opts.Root) == "" {
		return nil, faults.Wrap(faults.ErrConfiguration, "organizing", "resolve root", "no directory to organize", nil)
	}
	if o.classifier == nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "organizing", "init", "classifier not configured", nil)
	}

	runID := o.newID()
	ctx = faults.WithRunID(ctx, runID)
	ctx = faults.WithStage(ctx, "organizing")
	logger := logging.WithContext(ctx, o.logger)

	checks := o.checker(o.fs, root, opts.Apply)
	if err := preflight.Err(checks); err != nil {
		return nil, err
	}

	if opts.Apply && o.locker != nil {
		release, err := o.locker(root)
		if err != nil {
			return nil, faults.Wrap(faults.ErrConfiguration, "organizing", "lock root", root, err)
		}
		defer release()
	}

	entries, err := afero.ReadDir(o.fs, root)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfiguration, "organizing", "list root", root, err)
	}

	report := newReport(runID, root, !opts.Apply, o.now())
	report.Checks = checks
	logger.Info("organizer run started",
		logging.String("root", root),
		logging.Bool("dry_run", report.DryRun),
		logging.Int("entries", len(entries)),
	)

	for _, info := range entries {
		if err := ctx.Err(); err != nil {
			report.Canceled = true
			logger.Info("organizer run canceled", logging.Int("processed", report.Processed()))
			break
		}
		entry := classify.NewFileEntry(root, info)
		if reason, skip := skipReason(entry); skip {
			report.Skipped = append(report.Skipped, entry.Name)
			attrs := logging.DecisionAttrs("scan", "skip", reason)
			attrs = append(attrs, logging.String(logging.FieldFile, entry.Name))
			logger.Debug("entry skipped", logging.Args(attrs...)...)
			continue
		}
		if err := o.process(faults.WithFile(ctx, entry.Name), report, entry, opts.Apply); faults.IsFatal(err) {
			report.FinishedAt = o.now()
			logger.Error("organizer run aborted",
				logging.Error(err),
				logging.Int("processed", report.Processed()),
			)
			return report, err
		}
	}

	report.FinishedAt = o.now()
	logger.Info("organizer run finished",
		logging.Int("processed", report.Processed()),
		logging.Int("moved", report.Moved()),
		logging.Int("errors", len(report.Errors)),
		logging.Int("skipped", len(report.Skipped)),
		logging.Duration("duration", report.Duration()),
	)
	return report, nil
}

// process classifies and places one entry. The returned error has already
// been recorded in the report.
func (o *Organizer) process(ctx context.Context, report *Report, entry classify.FileEntry, apply bool) error {
	logger := logging.WithContext(ctx, o.logger)
	result := o.classifier.Classify(ctx, entry)
	if err := o.validate(result); err != nil {
		err = faults.Wrap(faults.ErrValidation, "organizing", "classify", entry.Name, err)
		o.fail(ctx, report, entry, err)
		return err
	}

	destDir := Destination(report.Root, result)
	decision := Decision{
		Name:        entry.Name,
		Source:      entry.Path,
		Result:      result,
		Destination: destDir,
		FinalPath:   filepath.Join(destDir, entry.Name),
	}
	if apply {
		final, err := o.mover.Place(ctx, entry.Path, destDir)
		if err != nil {
			o.fail(ctx, report, entry, err)
			return err
		}
		decision.FinalPath = final
		decision.Moved = true
		decision.Renamed = filepath.Base(final) != entry.Name
	}
	report.record(decision)
	logger.Info("file organized",
		logging.String("category", result.Display()),
		logging.String("final_path", decision.FinalPath),
		logging.Bool("moved", decision.Moved),
	)
	return nil
}

func (o *Organizer) validate(result classify.Result) error {
	if v, ok := o.classifier.(resultValidator); ok {
		return v.Validate(result)
	}
	return result.Validate()
}

func (o *Organizer) fail(ctx context.Context, report *Report, entry classify.FileEntry, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		report.Canceled = true
	}
	report.Errors = append(report.Errors, FileError{Name: entry.Name, Path: entry.Path, Err: err})
	logging.WarnWithContext(logging.WithContext(ctx, o.logger), "file left in place", "organize_file_failed",
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check permissions on the file and destination folder"),
	)
}

// Destination returns the folder a result maps to under root. Segments are
// sanitized so a category name can never escape the root.
func Destination(root string, result classify.Result) string {
	parts := []string{root}
	for _, segment := range result.Segments() {
		clean := textutil.SanitizeFileName(segment)
		if clean == "" || clean == "." || clean == ".." {
			continue
		}
		parts = append(parts, clean)
	}
	return filepath.Join(parts...)
}

func skipReason(entry classify.FileEntry) (string, bool) {
	switch {
	case entry.IsDir:
		return "directory", true
	case strings.HasPrefix(entry.Name, "."):
		return "hidden", true
	case strings.HasPrefix(entry.Name, "~$"):
		return "office lock file", true
	default:
		return "", false
	}
}
