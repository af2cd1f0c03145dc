package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/table-reservations/internal/application/usecases"
	"github.com/example/table-reservations/internal/clock"
	"github.com/example/table-reservations/internal/domain/reservation"
	"github.com/example/table-reservations/internal/infrastructure/config"
	"github.com/example/table-reservations/internal/infrastructure/logging"
	"github.com/example/table-reservations/internal/infrastructure/textfile"
)

type rootOptions struct {
	clock   clock.Clock
	envFile string
	file    string
}

// session is the in-process state shared by one command invocation.
type session struct {
	cfg     config.Config
	log     *logrus.Logger
	manager *reservation.Manager
	clock   clock.Clock
}

// open loads config, builds the logger and bulk-loads the restaurants file.
func (o *rootOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}
	path := o.file
	if path == "" {
		path = cfg.RestaurantsFile
	}
	if path == "" {
		return nil, fmt.Errorf("no restaurants file: pass --file or set TABLEBOOK_RESTAURANTS_FILE")
	}

	s := &session{
		cfg:     cfg,
		log:     logging.New(cfg, cmd.ErrOrStderr()),
		manager: reservation.NewManager(),
		clock:   o.clock,
	}
	if s.clock == nil {
		s.clock = clock.NewSystem()
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	load := usecases.LoadRestaurants{Source: textfile.New(path), Manager: s.manager, Log: s.log}
	if _, err := load.Execute(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) booker() usecases.BookTable {
	return usecases.BookTable{Manager: s.manager, Granularity: s.cfg.Granularity, Location: s.cfg.Location, Log: s.log}
}

func (s *session) queries() usecases.FreeTables {
	return usecases.FreeTables{Manager: s.manager, Granularity: s.cfg.Granularity, Location: s.cfg.Location}
}

// when parses --date as YYYY-MM-DD, "YYYY-MM-DD HH:MM" or RFC3339. Empty
// means now.
func (s *session) when(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return s.clock.Now().In(s.cfg.Location), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, v, s.cfg.Location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD, \"YYYY-MM-DD HH:MM\" or RFC3339)", v)
}

// applyBookings books each "restaurant:table" value at t. Table numbers are
// 1-based as printed by the free command.
func (s *session) applyBookings(bookings []string, t time.Time) error {
	b := s.booker()
	for _, raw := range bookings {
		name, table, err := parseBooking(raw)
		if err != nil {
			return err
		}
		if _, err := b.Execute(name, table-1, t); err != nil {
			return err
		}
	}
	return nil
}

func parseBooking(raw string) (string, int, error) {
	i := strings.LastIndex(raw, ":")
	if i <= 0 {
		return "", 0, fmt.Errorf("invalid --book %q (want restaurant:table)", raw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw[i+1:]))
	if err != nil {
		return "", 0, fmt.Errorf("invalid --book %q: table must be a number", raw)
	}
	return strings.TrimSpace(raw[:i]), n, nil
}
