package schedule

import (
	"time"

	"github.com/Aneeb1231/rxease/internal/client/models"
)

// Stats are the daily adherence counters shown on the reminders screen.
type Stats struct {
	Total    int
	Taken    int
	Missed   int
	Upcoming int
}

// Midnight truncates t to local midnight. Date comparisons in this package
// are calendar-day comparisons; time of day is ignored.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeStats counts taken, missed, and upcoming reminders relative to
// today. A past-dated reminder that was never acted on counts as missed;
// this is derived here at read time and never written back. A reminder with
// an unparseable date counts toward the total only.
func ComputeStats(reminders []models.Reminder, today time.Time) Stats {
	day := Midnight(today)

	var s Stats
	for _, r := range reminders {
		s.Total++
		switch r.Status {
		case models.StatusTaken:
			s.Taken++
		case models.StatusMissed:
			s.Missed++
		default:
			d, err := r.Day()
			if err != nil {
				continue
			}
			if d.Before(day) {
				s.Missed++
			} else {
				s.Upcoming++
			}
		}
	}
	return s
}
