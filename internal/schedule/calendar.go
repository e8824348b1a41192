package schedule

import (
	"iter"
	"time"

	"github.com/Aneeb1231/rxease/internal/client/models"
)

// DefaultCalendarDays is the length of the calendar strip on the reminders
// screen.
const DefaultCalendarDays = 15

// CalendarDay is one entry of the calendar strip.
type CalendarDay struct {
	Date  time.Time // local midnight
	Count int       // reminders scheduled on this calendar day
}

// Calendar returns a lazy, restartable sequence of exactly days consecutive
// calendar days starting at today, each annotated with the number of
// reminders falling on it. Day equality is on year/month/day only.
func Calendar(reminders []models.Reminder, today time.Time, days int) iter.Seq[CalendarDay] {
	start := Midnight(today)
	return func(yield func(CalendarDay) bool) {
		counts := countByDay(reminders)
		for i := 0; i < days; i++ {
			d := start.AddDate(0, 0, i)
			if !yield(CalendarDay{Date: d, Count: counts[d.Format(time.DateOnly)]}) {
				return
			}
		}
	}
}

func countByDay(reminders []models.Reminder) map[string]int {
	counts := make(map[string]int, len(reminders))
	for _, r := range reminders {
		d, err := r.Day()
		if err != nil {
			continue
		}
		counts[d.Format(time.DateOnly)]++
	}
	return counts
}
