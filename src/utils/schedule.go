package utils

import (
	"fmt"
	"time"

	"nextgame/src/types"

	"github.com/robfig/cron/v3"
)

// Standard five-field crontab, with an optional leading seconds field and
// @-descriptors allowed.
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateExpression checks that expr parses as a cron expression.
func ValidateExpression(expr string) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("%w: bad cron expression %q: %s", types.ErrInvalidInput, expr, err.Error())
	}
	return nil
}

// NextTrigger computes the first occurrence of expr strictly after now,
// evaluated against wall-clock time in the given IANA zone. The result is an
// absolute instant suitable as a document expiry.
func NextTrigger(expr, tz string, now time.Time) (time.Time, error) {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad cron expression %q: %s", types.ErrInvalidInput, expr, err.Error())
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time zone %q: %s", types.ErrInvalidInput, tz, err.Error())
	}
	next := sched.Next(now.In(loc))
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%w: cron expression %q never triggers", types.ErrInvalidInput, expr)
	}
	return next, nil
}

// ValidateSchedule rejects a cron/zone pair that could not produce a trigger.
// Called eagerly when a schedule is configured so a bad one never persists.
func ValidateSchedule(expr, tz string) error {
	_, err := NextTrigger(expr, tz, time.Now())
	return err
}
