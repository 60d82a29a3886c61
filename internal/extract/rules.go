package extract

import (
	"regexp"
	"strconv"
	"time"
)

// Fields holds every primitive value pulled from one isce.log.
type Fields struct {
	Alks   int
	Rlks   int
	Length int
	Width  int
	East   float64
	West   float64
	North  float64
	South  float64
	// pipeline stage start times, comma-millisecond log lines
	FiltStart      time.Time
	GeocodingStart time.Time
	// orbit reference times, dot-microsecond key/value lines
	MasterAscNode time.Time
	SlaveAscNode  time.Time
}

// Rule binds a field name to a line-anchored pattern and a converter. The
// pattern's first capture group is the raw value.
type Rule struct {
	Field  string
	re     *regexp.Regexp
	assign func(*Fields, string) error
}

// Pattern exposes the compiled pattern for rule-level tests.
func (r Rule) Pattern() *regexp.Regexp {
	return r.re
}

const (
	// stage log lines carry comma-delimited milliseconds
	stageLayout = "2006-01-02 15:04:05,000"
	// ascending node times carry dot-delimited fractional seconds; the
	// layout omits the fraction because time.Parse accepts one after the
	// seconds field regardless
	ascNodeLayout = "2006-01-02 15:04:05"
)

const floatPattern = `([-+]?\d*\.\d+|\d+)`

// Rules builds the full extraction rule table, one rule per required field.
// All patterns anchor at line start in multiline mode and the first match in
// document order wins. The table is immutable by convention; callers get a
// fresh slice each time.
func Rules() []Rule {
	return []Rule{
		{Field: "alks",
			re:     regexp.MustCompile(`(?m)^geocode.Azimuth\s+looks\s+=\s+(\d+)`),
			assign: intField(func(f *Fields, v int) { f.Alks = v })},
		{Field: "rlks",
			re:     regexp.MustCompile(`(?m)^geocode.Range\s+looks\s+=\s+(\d+)`),
			assign: intField(func(f *Fields, v int) { f.Rlks = v })},
		{Field: "east",
			re:     regexp.MustCompile(`(?m)^geocode.East\s+=\s+` + floatPattern),
			assign: floatField(func(f *Fields, v float64) { f.East = v })},
		{Field: "west",
			re:     regexp.MustCompile(`(?m)^geocode.West\s+=\s+` + floatPattern),
			assign: floatField(func(f *Fields, v float64) { f.West = v })},
		{Field: "north",
			re:     regexp.MustCompile(`(?m)^geocode.North\s+=\s+` + floatPattern),
			assign: floatField(func(f *Fields, v float64) { f.North = v })},
		{Field: "south",
			re:     regexp.MustCompile(`(?m)^geocode.South\s+=\s+` + floatPattern),
			assign: floatField(func(f *Fields, v float64) { f.South = v })},
		{Field: "length",
			re:     regexp.MustCompile(`(?m)^geocode.Length\s+=\s+(\d+)`),
			assign: intField(func(f *Fields, v int) { f.Length = v })},
		{Field: "width",
			re:     regexp.MustCompile(`(?m)^geocode.Width\s+=\s+(\d+)`),
			assign: intField(func(f *Fields, v int) { f.Width = v })},
		{Field: "filt_start_dt",
			re:     regexp.MustCompile(`(?m)^(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2},\d{3}) - isce.mroipac.filter - INFO - Filtering interferogram`),
			assign: timeField(stageLayout, func(f *Fields, v time.Time) { f.FiltStart = v })},
		{Field: "geocoding_start_dt",
			re:     regexp.MustCompile(`(?m)^(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2},\d{3}) - isce.topsinsar.runGeocode - INFO - Geocoding Image`),
			assign: timeField(stageLayout, func(f *Fields, v time.Time) { f.GeocodingStart = v })},
		{Field: "master_asc_node_time",
			re:     regexp.MustCompile(`(?m)^master.sensor.ascendingnodetime\s+=\s+(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}\.\d+)`),
			assign: timeField(ascNodeLayout, func(f *Fields, v time.Time) { f.MasterAscNode = v })},
		{Field: "slave_asc_node_time",
			re:     regexp.MustCompile(`(?m)^slave.sensor.ascendingnodetime\s+=\s+(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2}:\d{2}\.\d+)`),
			assign: timeField(ascNodeLayout, func(f *Fields, v time.Time) { f.SlaveAscNode = v })},
	}
}

func intField(set func(*Fields, int)) func(*Fields, string) error {
	return func(f *Fields, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		set(f, n)
		return nil
	}
}

func floatField(set func(*Fields, float64)) func(*Fields, string) error {
	return func(f *Fields, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		set(f, v)
		return nil
	}
}

func timeField(layout string, set func(*Fields, time.Time)) func(*Fields, string) error {
	return func(f *Fields, raw string) error {
		t, err := time.Parse(layout, raw)
		if err != nil {
			return err
		}
		set(f, t)
		return nil
	}
}
