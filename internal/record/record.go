package record

import (
	"strconv"
	"time"

	"isce_report/internal/extract"
)

// Record is one fully derived row of the report, immutable once built. A
// record is constructed atomically from one source file or not at all.
type Record struct {
	ID                 string
	MasterAscNodeTime  time.Time
	SlaveAscNodeTime   time.Time
	FiltStart          time.Time
	GeocodingStart     time.Time
	FilterGeoDeltaSecs int64
	Length             int
	Width              int
	Alks               int
	Rlks               int
	East               float64
	West               float64
	North              float64
	South              float64
	Lat                float64
	Lon                float64
}

// New builds a record from one file's extracted fields. The stage delta is
// whole seconds truncated toward zero and keeps its sign when geocoding
// started before filtering. Lat/lon are the bounding box midpoints, so they
// always land between the south/north and west/east extents.
func New(id string, f extract.Fields) Record {
	return Record{
		ID:                 id,
		MasterAscNodeTime:  f.MasterAscNode,
		SlaveAscNodeTime:   f.SlaveAscNode,
		FiltStart:          f.FiltStart,
		GeocodingStart:     f.GeocodingStart,
		FilterGeoDeltaSecs: int64(f.GeocodingStart.Sub(f.FiltStart) / time.Second),
		Length:             f.Length,
		Width:              f.Width,
		Alks:               f.Alks,
		Rlks:               f.Rlks,
		East:               f.East,
		West:               f.West,
		North:              f.North,
		South:              f.South,
		Lat:                f.South + abs(f.North-f.South)/2,
		Lon:                f.West + abs(f.East-f.West)/2,
	}
}

// Columns is the report header, in output order. Row renders values in the
// same order.
func Columns() []string {
	return []string{
		"id",
		"master_asc_node_time",
		"slave_asc_node_time",
		"filt_start_dt",
		"geocoding_start_dt",
		"filter_geo_delta_secs",
		"length",
		"width",
		"alks",
		"rlks",
		"east",
		"west",
		"north",
		"south",
		"lat",
		"lon",
	}
}

// Row renders the record as output strings, one per column.
func (r Record) Row() []string {
	return []string{
		r.ID,
		formatTime(r.MasterAscNodeTime),
		formatTime(r.SlaveAscNodeTime),
		formatTime(r.FiltStart),
		formatTime(r.GeocodingStart),
		strconv.FormatInt(r.FilterGeoDeltaSecs, 10),
		strconv.Itoa(r.Length),
		strconv.Itoa(r.Width),
		strconv.Itoa(r.Alks),
		strconv.Itoa(r.Rlks),
		formatFloat(r.East),
		formatFloat(r.West),
		formatFloat(r.North),
		formatFloat(r.South),
		formatFloat(r.Lat),
		formatFloat(r.Lon),
	}
}

// formatTime renders an ISO-8601 timestamp without a zone. The fractional
// part is six digits and is omitted entirely when zero.
func formatTime(t time.Time) string {
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
