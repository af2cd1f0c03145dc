package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Availability is a point-in-time summary of one restaurant.
type Availability struct {
	Name   string
	Tables int
	Free   int
}

// RecordSource yields raw "name,tableCount" lines for bulk loading.
type RecordSource interface {
	Lines(ctx context.Context) ([]string, error)
}

type Granularity string

const (
	GranularityExact Granularity = "exact"
	GranularityDay   Granularity = "day"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case GranularityExact, GranularityDay:
		return g, nil
	default:
		return "", fmt.Errorf("unknown granularity %q (want exact or day)", s)
	}
}

// Normalize maps t onto the booking key for g. Day granularity keeps only the
// calendar date of t as seen in loc.
func (g Granularity) Normalize(t time.Time, loc *time.Location) time.Time {
	if g != GranularityDay {
		return t
	}
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
