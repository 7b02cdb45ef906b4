// Package normaldate provides a compact calendar date value encoded as a
// single YYYYMMDD integer, the canonical date representation for drawing
// attributes. Construction validates against the proleptic Gregorian calendar
// and fails cleanly on unparsable or impossible dates.
package normaldate
