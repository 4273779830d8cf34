package taskparser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"clinic-assistant/pkg/datemath"
)

// Parser extracts structured tasks from free-form Vietnamese chat messages.
type Parser struct {
	dateMath *datemath.Parser
	clock    func() time.Time
}

// Option customises a Parser.
type Option func(*Parser)

// WithClock overrides the time source used for relative dates.
func WithClock(clock func() time.Time) Option {
	return func(p *Parser) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// New creates a Parser resolving dates through dateMath.
func New(dateMath *datemath.Parser, opts ...Option) *Parser {
	p := &Parser{
		dateMath: dateMath,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsTaskIntent reports whether input passes the task gate.
func IsTaskIntent(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	if containsAny(lower, intentKeywords) {
		return true
	}
	if strings.Contains(lower, ":") {
		return true
	}
	return containsAny(lower, timeKeywords)
}

// Parse returns the task described by input, or nil when input is not a task request.
func (p *Parser) Parse(input string, assignedBy *Person) *ParsedTask {
	if !IsTaskIntent(input) {
		return nil
	}

	lower := strings.ToLower(strings.TrimSpace(input))
	now := p.dateMath.Now(p.clock())

	t := &ParsedTask{
		Type: TypePersonal,
	}
	// Delegation words ("giao", "nhờ", "giúp") without an assigner stay personal.
	if assignedBy != nil {
		by := *assignedBy
		t.Type = TypeAssigned
		t.AssignedBy = &by
	}

	t.Title = extractTitle(input)
	t.Priority = extractPriority(lower)
	t.DueDate = p.extractDueDate(lower, now)
	t.DueTime = extractDueTime(lower)
	t.Category = extractCategory(lower)
	t.Tags = extractTags(lower)
	t.Description = extractDescription(input, t.Title)
	p.scheduleReminder(t, lower)
	t.EstimatedDuration = extractDuration(lower)

	return t
}

func extractTitle(input string) string {
	title := intentPattern.ReplaceAllString(input, "")
	title = strings.TrimSpace(title)
	title = strings.TrimSpace(leadingActionRegexp.ReplaceAllString(title, ""))

	if idx := strings.Index(title, ":"); idx >= 0 {
		title = strings.TrimSpace(title[idx+1:])
	}

	if utf8.RuneCountInString(title) < minTitleRunes {
		title = strings.TrimSpace(input)
	}
	if title == "" {
		title = DefaultTitle
	}
	return title
}

func extractPriority(lower string) Priority {
	switch {
	case containsAny(lower, urgentKeywords):
		return PriorityUrgent
	case containsAny(lower, highKeywords):
		return PriorityHigh
	case containsAny(lower, lowKeywords):
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// extractDueDate keeps the last relative phrase that matched, then lets an
// explicit date override it.
func (p *Parser) extractDueDate(lower string, now time.Time) string {
	var due string

	for _, phrase := range []string{datemath.Tomorrow, datemath.Today, datemath.ThisWeek, datemath.ThisMonth} {
		if !strings.Contains(lower, phrase) {
			continue
		}
		day, err := p.dateMath.Parse(phrase, now)
		if err != nil {
			continue
		}
		due = datemath.FormatDate(day)
	}

	if m := slashDateRegexp.FindStringSubmatch(lower); m != nil {
		return datemath.FormatDate(p.dateMath.Date(atoiOr(m[3], now.Year()), atoiOr(m[2], 1), atoiOr(m[1], 1)))
	}
	if m := dashDateRegexp.FindStringSubmatch(lower); m != nil {
		return datemath.FormatDate(p.dateMath.Date(atoiOr(m[3], now.Year()), atoiOr(m[2], 1), atoiOr(m[1], 1)))
	}
	if m := wordDateRegexp.FindStringSubmatch(lower); m != nil {
		return datemath.FormatDate(p.dateMath.Date(atoiOr(m[3], now.Year()), atoiOr(m[2], int(now.Month())), atoiOr(m[1], 1)))
	}

	return due
}

func extractDueTime(lower string) string {
	if m := atTimeRegexp.FindStringSubmatch(lower); m != nil {
		return formatClock(atoiOr(m[1], 0), atoiOr(m[2], 0))
	}

	if m := hourTimeRegexp.FindStringSubmatch(lower); m != nil {
		hour := atoiOr(m[1], 0)
		minute := atoiOr(m[2], 0)
		switch m[3] {
		case "chiều", "tối":
			if hour < 12 {
				hour += 12
			}
		case "sáng":
			if hour == 12 {
				hour = 0
			}
		}
		return formatClock(hour, minute)
	}

	return ""
}

func extractCategory(lower string) string {
	for _, c := range categories {
		if containsAny(lower, c.keywords) {
			return c.name
		}
	}
	return ""
}

func extractTags(lower string) []string {
	var tags []string
	for _, tag := range tagVocabulary {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

func extractDescription(input, title string) string {
	if utf8.RuneCountInString(title) >= utf8.RuneCountInString(input) {
		return ""
	}
	m := colonCaptureRegexp.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func (p *Parser) scheduleReminder(t *ParsedTask, lower string) {
	t.ReminderEnabled = containsAny(lower, reminderKeywords) || t.DueDate != "" || t.DueTime != ""
	if !t.ReminderEnabled {
		return
	}

	t.ReminderTime = DefaultReminderTime
	t.ReminderDate = t.DueDate

	if t.DueDate == "" || t.DueTime == "" {
		return
	}

	var hour, minute int
	if _, err := fmt.Sscanf(t.DueTime, "%d:%d", &hour, &minute); err != nil {
		return
	}

	if hour == 0 {
		t.ReminderTime = formatClock(23, minute)
		if due, err := time.ParseInLocation(datemath.ISODate, t.DueDate, p.dateMath.Location()); err == nil {
			t.ReminderDate = datemath.FormatDate(due.AddDate(0, 0, -1))
		}
		return
	}
	t.ReminderTime = formatClock(hour-1, minute)
}

func extractDuration(lower string) int {
	m := durationRegexp.FindStringSubmatch(lower)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	if m[2] == "phút" {
		return n
	}
	return n * 60
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func buildAlternation(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
