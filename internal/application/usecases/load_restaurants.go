package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/table-reservations/internal/domain/reservation"
)

type LoadRestaurants struct {
	Source  reservation.RecordSource
	Manager *reservation.Manager
	Log     logrus.FieldLogger
}

type LoadResult struct {
	Added   int
	Skipped int
}

// Execute adds one restaurant per well-formed "name,tables" record. Malformed
// records are logged and skipped; an error from AddRestaurant stops the load.
func (u LoadRestaurants) Execute(ctx context.Context) (LoadResult, error) {
	if u.Source == nil || u.Manager == nil {
		return LoadResult{}, fmt.Errorf("source and manager are required")
	}
	lines, err := u.Source.Lines(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("read restaurants: %w", err)
	}

	var res LoadResult
	for i, line := range lines {
		name, tables, ok := parseRecord(line)
		if !ok {
			res.Skipped++
			u.logger().WithFields(logrus.Fields{"line": i + 1, "record": line}).Warn("skipping malformed restaurant record")
			continue
		}
		if err := u.Manager.AddRestaurant(name, tables); err != nil {
			return res, fmt.Errorf("line %d: %w", i+1, err)
		}
		res.Added++
	}
	u.logger().WithFields(logrus.Fields{"added": res.Added, "skipped": res.Skipped}).Info("restaurants loaded")
	return res, nil
}

func (u LoadRestaurants) logger() logrus.FieldLogger {
	if u.Log == nil {
		return logrus.StandardLogger()
	}
	return u.Log
}

func parseRecord(line string) (string, int, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return "", 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(parts[0]), n, true
}
