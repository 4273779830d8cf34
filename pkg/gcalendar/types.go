package gcalendar

import "time"

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// ReminderPopup is the reminder method used for task events.
const ReminderPopup = "popup"

// MaxReminderMinutes is the largest reminder offset Google Calendar accepts (four weeks).
const MaxReminderMinutes = 40320

// Reminder overrides the calendar's default notification.
type Reminder struct {
	Method  string
	Minutes int64 // before the event start
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool   // only the dates of StartTime and EndTime are used
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
	Reminders   []Reminder
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
