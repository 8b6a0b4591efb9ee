package organizer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"deskorg/internal/classify"
	"deskorg/internal/extract"
	"deskorg/internal/faults"
	"deskorg/internal/logging"
	"deskorg/internal/preflight"
	"deskorg/internal/rules"
)

func newTestOrganizer(fs afero.Fs, mover Placer, opts ...Option) *Organizer {
	content := extract.New(fs, logging.NewNop())
	classifier := classify.New(rules.Default(), content, logging.NewNop())
	return New(fs, classifier, mover, logging.NewNop(), opts...)
}

func seedDesktop(t *testing.T, fs afero.Fs) {
	t.Helper()
	mustWrite(t, fs, "/desk/IMG_2031.JPG", "jpeg")
	mustWrite(t, fs, "/desk/WhatsApp Image 2024.jpg", "jpeg")
	mustWrite(t, fs, "/desk/CamScanner_doc.zip", "zip")
	mustWrite(t, fs, "/desk/linguistics_discourse.txt", "")
	mustWrite(t, fs, "/desk/brief.txt", "translation contract for the french client")
	mustWrite(t, fs, "/desk/setup.exe", "MZ")
	mustWrite(t, fs, "/desk/.hidden", "x")
	mustWrite(t, fs, "/desk/~$draft.docx", "lock")
	if err := fs.MkdirAll("/desk/projects", 0o755); err != nil {
		t.Fatal(err)
	}
}

func decisionsByName(report *Report) map[string]Decision {
	out := make(map[string]Decision, len(report.Decisions))
	for _, d := range report.Decisions {
		out[d.Name] = d
	}
	return out
}

func TestRunDryRunReportsWithoutMoving(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	o := newTestOrganizer(fs, nil)

	report, err := o.Run(context.Background(), Options{Root: "/desk"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.DryRun || report.RunID == "" {
		t.Fatalf("unexpected report header %+v", report)
	}
	if report.Processed() != 6 || report.Moved() != 0 {
		t.Fatalf("expected 6 processed and 0 moved, got %d/%d", report.Processed(), report.Moved())
	}

	byName := decisionsByName(report)
	want := map[string]string{
		"IMG_2031.JPG":              "/desk/images/camera",
		"WhatsApp Image 2024.jpg":   "/desk/images/whatsapp",
		"CamScanner_doc.zip":        "/desk/work/camscanner",
		"linguistics_discourse.txt": "/desk/study",
		"brief.txt":                 "/desk/work/language section/french",
		"setup.exe":                 "/desk/uncategorized",
	}
	for name, dest := range want {
		d, ok := byName[name]
		if !ok {
			t.Fatalf("missing decision for %s", name)
		}
		if d.Destination != dest {
			t.Fatalf("%s: expected %s, got %s", name, dest, d.Destination)
		}
		if d.FinalPath != filepath.Join(dest, name) {
			t.Fatalf("%s: unexpected planned path %s", name, d.FinalPath)
		}
		if exists, _ := afero.Exists(fs, filepath.Join("/desk", name)); !exists {
			t.Fatalf("dry run moved %s", name)
		}
	}
	if exists, _ := afero.DirExists(fs, "/desk/images"); exists {
		t.Fatal("dry run created a category folder")
	}

	skipped := strings.Join(report.Skipped, ",")
	for _, name := range []string{".hidden", "~$draft.docx", "projects"} {
		if !strings.Contains(skipped, name) {
			t.Fatalf("expected %s to be skipped, got %v", name, report.Skipped)
		}
	}
	if report.Counts["images"] != 2 || report.Counts["work"] != 2 || report.Counts["study"] != 1 {
		t.Fatalf("unexpected counts %v", report.Counts)
	}
}

func TestRunApplyMovesFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	mustWrite(t, fs, "/desk/study/linguistics_discourse.txt", "older copy")
	o := newTestOrganizer(fs, nil)

	report, err := o.Run(context.Background(), Options{Root: "/desk", Apply: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.DryRun || report.Moved() != 6 || len(report.Errors) != 0 {
		t.Fatalf("unexpected report: moved=%d errors=%v", report.Moved(), report.Errors)
	}
	for _, path := range []string{
		"/desk/images/camera/IMG_2031.JPG",
		"/desk/images/whatsapp/WhatsApp Image 2024.jpg",
		"/desk/work/camscanner/CamScanner_doc.zip",
		"/desk/study/linguistics_discourse_1.txt",
		"/desk/work/language section/french/brief.txt",
		"/desk/uncategorized/setup.exe",
	} {
		if exists, _ := afero.Exists(fs, path); !exists {
			t.Fatalf("expected %s to exist", path)
		}
	}
	d := decisionsByName(report)["linguistics_discourse.txt"]
	if !d.Renamed || d.FinalPath != "/desk/study/linguistics_discourse_1.txt" {
		t.Fatalf("expected collision rename, got %+v", d)
	}
	for _, name := range []string{".hidden", "~$draft.docx"} {
		if exists, _ := afero.Exists(fs, filepath.Join("/desk", name)); !exists {
			t.Fatalf("%s must stay in place", name)
		}
	}
}

type flakyPlacer struct {
	inner  Placer
	failOn string
}

func (p flakyPlacer) Place(ctx context.Context, src, destDir string) (string, error) {
	if filepath.Base(src) == p.failOn {
		return "", faults.Wrap(faults.ErrFileSystem, "moving", "rename", p.failOn, errors.New("permission denied"))
	}
	return p.inner.Place(ctx, src, destDir)
}

func TestRunContinuesAfterFileError(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	o := newTestOrganizer(fs, flakyPlacer{inner: NewMover(fs, nil), failOn: "setup.exe"})

	report, err := o.Run(context.Background(), Options{Root: "/desk", Apply: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Errors) != 1 || report.Errors[0].Name != "setup.exe" {
		t.Fatalf("expected one error for setup.exe, got %v", report.Errors)
	}
	if !errors.Is(report.Errors[0], faults.ErrFileSystem) {
		t.Fatalf("expected filesystem error, got %v", report.Errors[0])
	}
	if report.Moved() != 5 {
		t.Fatalf("expected 5 moves, got %d", report.Moved())
	}
	if exists, _ := afero.Exists(fs, "/desk/setup.exe"); !exists {
		t.Fatal("failed file must stay in place")
	}
}

type placerFunc func(ctx context.Context, src, destDir string) (string, error)

func (f placerFunc) Place(ctx context.Context, src, destDir string) (string, error) {
	return f(ctx, src, destDir)
}

func TestRunAbortsOnFatalPlacerError(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	placer := placerFunc(func(ctx context.Context, src, destDir string) (string, error) {
		if filepath.Base(src) == "brief.txt" {
			return "", faults.Wrap(faults.ErrConfiguration, "moving", "mkdir", destDir, errors.New("read-only file system"))
		}
		return NewMover(fs, nil).Place(ctx, src, destDir)
	})

	report, err := newTestOrganizer(fs, placer).Run(context.Background(), Options{Root: "/desk", Apply: true})
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if report == nil {
		t.Fatal("expected the partial report")
	}
	if report.Moved() != 3 || len(report.Errors) != 1 || report.Errors[0].Name != "brief.txt" {
		t.Fatalf("unexpected partial report: moved=%d errors=%v", report.Moved(), report.Errors)
	}
	for _, name := range []string{"brief.txt", "linguistics_discourse.txt", "setup.exe"} {
		if exists, _ := afero.Exists(fs, filepath.Join("/desk", name)); !exists {
			t.Fatalf("%s must not move after the batch stopped", name)
		}
	}
}

type subdividingClassifier struct {
	*classify.Classifier
}

func (c subdividingClassifier) Classify(context.Context, classify.FileEntry) classify.Result {
	return classify.Result{Primary: rules.CategoryAudio, Subcategory: "podcasts"}
}

func TestRunRejectsSubcategoryTheTablesDoNotDefine(t *testing.T) {
	fs := afero.NewMemMapFs()
	mustWrite(t, fs, "/desk/episode.mp3", "id3")
	classifier := subdividingClassifier{classify.New(rules.Default(), nil, logging.NewNop())}
	o := New(fs, classifier, nil, logging.NewNop())

	report, err := o.Run(context.Background(), Options{Root: "/desk", Apply: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Errors) != 1 || !errors.Is(report.Errors[0], faults.ErrValidation) {
		t.Fatalf("expected one validation error, got %v", report.Errors)
	}
	if report.Processed() != 0 {
		t.Fatalf("invalid result must not be recorded, got %+v", report.Decisions)
	}
	if exists, _ := afero.Exists(fs, "/desk/episode.mp3"); !exists {
		t.Fatal("file must stay in place")
	}
}

func TestRunRecordsPreflightChecks(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	readers := preflight.Result{Name: "Content readers", Passed: true, Detail: "pdf (5 pages)"}
	checker := func(fs afero.Fs, root string, apply bool) []preflight.Result {
		return append(RootChecker(fs, root, apply), readers)
	}

	report, err := newTestOrganizer(fs, nil, WithChecker(checker)).Run(context.Background(), Options{Root: "/desk"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Checks) != 2 || !report.Checks[0].Passed || report.Checks[1] != readers {
		t.Fatalf("unexpected checks %+v", report.Checks)
	}

	failing := func(afero.Fs, string, bool) []preflight.Result {
		return []preflight.Result{{Name: "Log directory", Detail: "/logs (error: does not exist)"}}
	}
	_, err = newTestOrganizer(fs, nil, WithChecker(failing)).Run(context.Background(), Options{Root: "/desk", Apply: true})
	if !errors.Is(err, faults.ErrConfiguration) || !strings.Contains(err.Error(), "Log directory") {
		t.Fatalf("expected failed check to abort, got %v", err)
	}
	if exists, _ := afero.Exists(fs, "/desk/setup.exe"); !exists {
		t.Fatal("no file may move when a check fails")
	}
}

func TestRunMissingRootIsConfigurationError(t *testing.T) {
	o := newTestOrganizer(afero.NewMemMapFs(), nil)

	_, err := o.Run(context.Background(), Options{Root: "/nowhere", Apply: true})
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}

	_, err = o.Run(context.Background(), Options{})
	if !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error for empty root, got %v", err)
	}
}

func TestRunStopsOnCancellation(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newTestOrganizer(fs, nil).Run(ctx, Options{Root: "/desk", Apply: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.Canceled || report.Processed() != 0 {
		t.Fatalf("expected canceled run with no work, got %+v", report)
	}
}

func TestRunLockFailureAbortsApply(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedDesktop(t, fs)
	locker := func(string) (func(), error) { return nil, errors.New("busy") }
	o := newTestOrganizer(fs, nil, WithLocker(locker))

	if _, err := o.Run(context.Background(), Options{Root: "/desk", Apply: true}); !errors.Is(err, faults.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if exists, _ := afero.Exists(fs, "/desk/setup.exe"); !exists {
		t.Fatal("no file may move when the lock fails")
	}

	if _, err := o.Run(context.Background(), Options{Root: "/desk"}); err != nil {
		t.Fatalf("dry run must not take the lock: %v", err)
	}
}

func TestFileLockerExcludesSecondRun(t *testing.T) {
	root := t.TempDir()
	release, err := FileLocker(root)
	if err != nil {
		t.Fatalf("FileLocker: %v", err)
	}
	if _, err := FileLocker(root); err == nil {
		t.Fatal("expected second lock to fail")
	}
	release()
	again, err := FileLocker(root)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	again()
}

func TestRunReportTimestamps(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/desk", 0o755)
	ticks := []time.Time{time.Unix(100, 0), time.Unix(103, 0)}
	clock := func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	}

	report, err := newTestOrganizer(fs, nil, withClock(clock)).Run(context.Background(), Options{Root: "/desk"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Duration() != 3*time.Second {
		t.Fatalf("expected 3s, got %s", report.Duration())
	}
}

func TestDestinationSanitizesSegments(t *testing.T) {
	got := Destination("/desk", classify.Result{Primary: "work", Subcategory: "a/b", SubSubcategory: ".."})
	if got != "/desk/work/a-b" {
		t.Fatalf("unexpected destination %q", got)
	}
}

func TestSortedCounts(t *testing.T) {
	r := newReport("id", "/desk", true, time.Now())
	for _, category := range []string{"study", "images", "images", "audio"} {
		r.record(Decision{Result: classify.Result{Primary: category}})
	}
	rows := r.SortedCounts()
	if len(rows) != 3 || rows[0].Category != "images" || rows[1].Category != "audio" {
		t.Fatalf("unexpected order %+v", rows)
	}
}
