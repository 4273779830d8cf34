package datemath

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout used for due dates and reminder dates.
const ISODate = "2006-01-02"

// Vietnamese relative day phrases understood by Parse.
const (
	Today     = "hôm nay"
	Tomorrow  = "ngày mai"
	ThisWeek  = "tuần này"
	ThisMonth = "tháng này"
)

// Parser resolves relative Vietnamese date phrases to calendar days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative phrase to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case Today:
		return p.startOfDay(baseTime), nil
	case Tomorrow:
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case ThisWeek:
		return p.EndOfWeek(baseTime), nil
	case ThisMonth:
		return p.EndOfMonth(baseTime), nil
	}

	return baseTime, fmt.Errorf("unknown relative date: %q", relative)
}

// EndOfWeek returns today + (7 - weekday), counting Sunday as 0.
// On a Sunday this lands on the following Sunday.
func (p *Parser) EndOfWeek(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	return p.startOfDay(t.AddDate(0, 0, 7-int(t.Weekday())))
}

// EndOfMonth returns the last day of baseTime's month.
func (p *Parser) EndOfMonth(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, p.location)
}

// Date builds a calendar day, normalising out-of-range values the way
// time.Date does (31/02 rolls into March).
func (p *Parser) Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
}

// Now returns t in the parser's timezone.
func (p *Parser) Now(t time.Time) time.Time {
	return t.In(p.location)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}
