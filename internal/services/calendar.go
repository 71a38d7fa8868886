package services

import (
	"errors"
	"strings"
	"time"
)

// BusinessUTCOffsetHours fixes the day boundary used for "today". It does not
// follow the server timezone.
const BusinessUTCOffsetHours = -3

const BusinessDayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var BusinessLocation = time.FixedZone("UTC-3", BusinessUTCOffsetHours*60*60)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock time.Time

func (clock fixedClock) Now() time.Time {
	return time.Time(clock)
}

// FixedClock always reports value; handy for seeding and tests.
func FixedClock(value time.Time) Clock {
	return fixedClock(value)
}

func BusinessDay(now time.Time) string {
	return now.In(BusinessLocation).Format(BusinessDayLayout)
}

func ParseBusinessDay(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.ParseInLocation(BusinessDayLayout, trimmed, BusinessLocation)
	if err != nil {
		return "", ErrInvalidDate
	}
	return parsed.Format(BusinessDayLayout), nil
}
