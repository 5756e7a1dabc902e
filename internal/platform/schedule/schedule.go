// Package schedule computes daily broadcast trigger times.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	// Embed tzdata for environments without zoneinfo.
	_ "time/tzdata"
)

// Time conversion constants.
const (
	minutesPerHour = 60
	maxHour        = 23
)

// Static errors for schedule validation.
var (
	ErrTimeFormat     = errors.New("time must be HH:MM")
	ErrInvalidHour    = errors.New("invalid hour")
	ErrInvalidMinute  = errors.New("invalid minute")
	ErrHourOutOfRange = errors.New("hour out of range")
)

// Daily fires once per day at a fixed wall-clock time in a timezone.
type Daily struct {
	TimeOfDay string
	Timezone  string
}

// Location resolves the schedule timezone or defaults to UTC.
func (d Daily) Location() (*time.Location, error) {
	if strings.TrimSpace(d.Timezone) == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(strings.TrimSpace(d.Timezone))
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	return loc, nil
}

// Validate checks schedule fields for correctness.
func (d Daily) Validate() error {
	if _, err := d.Location(); err != nil {
		return err
	}

	if _, err := parseTimeHM(d.TimeOfDay); err != nil {
		return fmt.Errorf("invalid time %q: %w", d.TimeOfDay, err)
	}

	return nil
}

// Next returns the first trigger time strictly after the given moment.
func (d Daily) Next(after time.Time) (time.Time, error) {
	loc, err := d.Location()
	if err != nil {
		return time.Time{}, err
	}

	minutes, err := parseTimeHM(d.TimeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	local := after.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), minutes/minutesPerHour, minutes%minutesPerHour, 0, 0, loc)

	if !next.After(after) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}

func parseTimeHM(value string) (int, error) {
	normalized, err := NormalizeTimeHM(value)
	if err != nil {
		return 0, err
	}

	hour, err := strconv.Atoi(normalized[:2])
	if err != nil {
		return 0, ErrInvalidHour
	}

	minute, err := strconv.Atoi(normalized[3:])
	if err != nil {
		return 0, ErrInvalidMinute
	}

	return hour*minutesPerHour + minute, nil
}

// NormalizeTimeHM accepts H:MM or HH:MM and returns HH:MM.
func NormalizeTimeHM(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrTimeFormat
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return "", ErrTimeFormat
	}

	if len(parts[1]) != 2 {
		return "", ErrTimeFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", ErrInvalidHour
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", ErrInvalidMinute
	}

	if hour > maxHour || hour < 0 {
		return "", ErrHourOutOfRange
	}

	if minute < 0 || minute >= minutesPerHour {
		return "", ErrInvalidMinute
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
