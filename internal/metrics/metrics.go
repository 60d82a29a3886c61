package metrics

import "sync/atomic"

var filesParsed int64
var filesSkipped int64

func IncParsed()  { atomic.AddInt64(&filesParsed, 1) }
func IncSkipped() { atomic.AddInt64(&filesSkipped, 1) }

func Snapshot() map[string]int64 {
	return map[string]int64{
		"files_parsed":  atomic.LoadInt64(&filesParsed),
		"files_skipped": atomic.LoadInt64(&filesSkipped),
	}
}

// Reset zeroes the counters. For tests.
func Reset() {
	atomic.StoreInt64(&filesParsed, 0)
	atomic.StoreInt64(&filesSkipped, 0)
}
