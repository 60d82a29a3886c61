package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"isce_report/internal/config"
	"isce_report/internal/crawl"
	"isce_report/internal/extract"
	"isce_report/internal/logging"
	"isce_report/internal/metrics"
	"isce_report/internal/record"
	"isce_report/internal/report"
)

// App drives the crawl-extract-report pass.
type App struct {
	cfg   config.Config
	log   *logging.Logger
	rules []extract.Rule

	// Out receives the human-readable table. Defaults to stdout.
	Out io.Writer
}

func New(cfg config.Config, logger *logging.Logger) *App {
	return &App{
		cfg:   cfg,
		log:   logger,
		rules: extract.Rules(),
		Out:   os.Stdout,
	}
}

// Summary reports what a run did.
type Summary struct {
	Parsed  int
	Skipped int
}

// outcome is the per-file result: exactly one of rec and err is meaningful.
type outcome struct {
	path string
	rec  record.Record
	err  error
}

// Run crawls root, parses every isce.log found, renders the table, and
// writes the CSV. Any failure while reading or parsing one file is logged
// and that file skipped; crawl and output failures abort the run.
func (a *App) Run(ctx context.Context, root string) (Summary, error) {
	table := report.NewTable()
	var sum Summary

	err := crawl.Walk(root, func(path string) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		o := a.processFile(path)
		if o.err != nil {
			a.log.Error("parse", "skipping %s: %v", o.path, o.err)
			metrics.IncSkipped()
			sum.Skipped++
			return nil
		}
		table.Add(o.rec)
		metrics.IncParsed()
		sum.Parsed++
		return nil
	})
	if err != nil {
		return sum, err
	}

	table.Render(a.Out)
	if err := table.WriteCSV(a.cfg.OutputPath); err != nil {
		return sum, err
	}
	a.log.Info("run", "wrote %s: %d rows, %d skipped", a.cfg.OutputPath, sum.Parsed, sum.Skipped)
	return sum, nil
}

// processFile parses one log file into a record. The dataset id is the name
// of the file's immediate parent directory.
func (a *App) processFile(path string) outcome {
	id := filepath.Base(filepath.Dir(path))
	data, err := os.ReadFile(path)
	if err != nil {
		return outcome{path: path, err: fmt.Errorf("read: %w", err)}
	}
	fields, err := extract.Extract(string(data), a.rules)
	if err != nil {
		return outcome{path: path, err: err}
	}
	a.traceFields(path, fields)
	return outcome{path: path, rec: record.New(id, fields)}
}

func (a *App) traceFields(path string, f extract.Fields) {
	a.log.Debug("extract", "%s alks: %d", path, f.Alks)
	a.log.Debug("extract", "%s rlks: %d", path, f.Rlks)
	a.log.Debug("extract", "%s east: %g", path, f.East)
	a.log.Debug("extract", "%s west: %g", path, f.West)
	a.log.Debug("extract", "%s north: %g", path, f.North)
	a.log.Debug("extract", "%s south: %g", path, f.South)
	a.log.Debug("extract", "%s length: %d", path, f.Length)
	a.log.Debug("extract", "%s width: %d", path, f.Width)
	a.log.Debug("extract", "%s filt_start_dt: %s", path, f.FiltStart)
	a.log.Debug("extract", "%s geocoding_start_dt: %s", path, f.GeocodingStart)
	a.log.Debug("extract", "%s master_asc_node_time: %s", path, f.MasterAscNode)
	a.log.Debug("extract", "%s slave_asc_node_time: %s", path, f.SlaveAscNode)
}
