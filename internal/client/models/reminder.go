package models

import (
	"strings"
	"time"
)

// Reminder statuses persisted by the backend. A reminder that was never
// acted on has an empty status; "missed" for past-dated unset reminders is
// derived at read time and never written back.
const (
	StatusTaken  = "taken"
	StatusMissed = "missed"
)

// Reminder is a scheduled medication intake.
type Reminder struct {
	ID         string `json:"_id,omitempty"`
	Medication string `json:"medication"`
	Dosage     string `json:"dosage"`
	Time       string `json:"time"` // HH:MM, 24-hour
	Date       string `json:"date"` // calendar date, YYYY-MM-DD
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status,omitempty"`
	TakenAt    string `json:"takenAt,omitempty"` // stamped by the backend on the taken transition
}

func (r Reminder) EntityID() string { return r.ID }

func (r Reminder) MissingFields() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"medication", r.Medication},
		{"dosage", r.Dosage},
		{"time", r.Time},
		{"date", r.Date},
	} {
		if isBlank(f.value) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Day parses the reminder's calendar date, truncated to local midnight.
// The backend may return either a bare date or a full RFC 3339 timestamp.
func (r Reminder) Day() (time.Time, error) {
	s := r.Date
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
