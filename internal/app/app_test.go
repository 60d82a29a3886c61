package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isce_report/internal/config"
	"isce_report/internal/crawl"
	"isce_report/internal/logging"
)

const validLog = `2020-01-01 00:00:00,000 - isce.mroipac.filter - INFO - Filtering interferogram
2020-01-01 00:05:30,500 - isce.topsinsar.runGeocode - INFO - Geocoding Image
master.sensor.ascendingnodetime = 2019-12-31 22:10:05.123456
slave.sensor.ascendingnodetime = 2020-01-12 22:10:06.654321
geocode.Azimuth looks = 7
geocode.Range looks = 19
geocode.East = 10.0
geocode.West = 2.0
geocode.North = 8.0
geocode.South = 4.0
geocode.Length = 13456
geocode.Width = 17012
`

func newTestApp(t *testing.T) (*App, string, *bytes.Buffer) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.csv")
	logger, err := logging.New(logging.LevelError, "")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { logger.Close() })
	a := New(config.Config{OutputPath: out, LogLevel: "error"}, logger)
	var buf bytes.Buffer
	a.Out = &buf
	return a, out, &buf
}

func writeLog(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "isce.log"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestRunParsesValidAndSkipsMalformed(t *testing.T) {
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "good"), validLog)
	// malformed file misses the width line
	writeLog(t, filepath.Join(root, "bad"), strings.Replace(validLog, "geocode.Width = 17012\n", "", 1))

	a, out, _ := newTestApp(t)
	sum, err := a.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sum.Parsed != 1 || sum.Skipped != 1 {
		t.Fatalf("expected 1 parsed 1 skipped, got %+v", sum)
	}
	lines := readLines(t, out)
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "good,") {
		t.Fatalf("row should be indexed by parent dir name, got %s", lines[1])
	}
}

func TestRunIDIsImmediateParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "ancestor", "A"), validLog)
	writeLog(t, filepath.Join(root, "ancestor", "B"), validLog)

	a, out, _ := newTestApp(t)
	if _, err := a.Run(context.Background(), root); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	lines := readLines(t, out)
	if len(lines) != 3 {
		t.Fatalf("expected 2 rows, got %v", lines)
	}
	if !strings.HasPrefix(lines[1], "A,") || !strings.HasPrefix(lines[2], "B,") {
		t.Fatalf("expected rows A then B, got %v", lines[1:])
	}
}

func TestRunDuplicateIDLastWins(t *testing.T) {
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "x", "SAME"), validLog)
	// later file under the same-named dir carries a different alks
	writeLog(t, filepath.Join(root, "y", "SAME"), strings.Replace(validLog, "Azimuth looks = 7", "Azimuth looks = 42", 1))

	a, out, _ := newTestApp(t)
	sum, err := a.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sum.Parsed != 2 {
		t.Fatalf("both files should parse, got %+v", sum)
	}
	lines := readLines(t, out)
	if len(lines) != 2 {
		t.Fatalf("duplicate id must collapse to one row, got %v", lines)
	}
	if !strings.Contains(lines[1], ",42,") {
		t.Fatalf("last write should win, got %s", lines[1])
	}
}

func TestRunEmptyTreeWritesHeaderOnly(t *testing.T) {
	a, out, rendered := newTestApp(t)
	sum, err := a.Run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sum.Parsed != 0 || sum.Skipped != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
	lines := readLines(t, out)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "id,") {
		t.Fatalf("expected header-only csv, got %v", lines)
	}
	if !strings.Contains(rendered.String(), "id") {
		t.Fatal("table header should still be rendered")
	}
}

func TestRunMissingRootFails(t *testing.T) {
	a, _, _ := newTestApp(t)
	_, err := a.Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
	var fsErr crawl.FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected FilesystemError, got %v", err)
	}
}

func TestRunDeterministicOutput(t *testing.T) {
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "B"), validLog)
	writeLog(t, filepath.Join(root, "A"), validLog)

	a, out, _ := newTestApp(t)
	if _, err := a.Run(context.Background(), root); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Run(context.Background(), root); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("two runs on an unchanged tree must produce identical output")
	}
}

func TestRunCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "A"), validLog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a, _, _ := newTestApp(t)
	if _, err := a.Run(ctx, root); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestRunUnreadableFileIsSkipped(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits do not bind for root")
	}
	root := t.TempDir()
	writeLog(t, filepath.Join(root, "good"), validLog)
	writeLog(t, filepath.Join(root, "locked"), validLog)
	if err := os.Chmod(filepath.Join(root, "locked", "isce.log"), 0o000); err != nil {
		t.Fatal(err)
	}

	a, _, _ := newTestApp(t)
	sum, err := a.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("run should survive an unreadable file: %v", err)
	}
	if sum.Parsed != 1 || sum.Skipped != 1 {
		t.Fatalf("expected 1 parsed 1 skipped, got %+v", sum)
	}
}
