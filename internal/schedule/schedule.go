// Package schedule derives presentation-ready groupings and statistics from
// a reminder list. Everything here is pure: functions take the reminders and
// a reference time and never touch the backend.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Aneeb1231/rxease/internal/client/models"
)

// TimeOfDay is the display bucket of a reminder.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"   // hour < 12
	Afternoon TimeOfDay = "Afternoon" // 12 <= hour < 18
	Evening   TimeOfDay = "Evening"   // hour >= 18
)

// BucketOrder is the display order of the buckets.
var BucketOrder = []TimeOfDay{Morning, Afternoon, Evening}

// Classify buckets an HH:MM time string by its hour component. A time whose
// leading component is not numeric is rejected.
func Classify(hhmm string) (TimeOfDay, error) {
	head, _, _ := strings.Cut(hhmm, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return "", fmt.Errorf("unparseable reminder time %q", hhmm)
	}
	switch {
	case hour < 12:
		return Morning, nil
	case hour < 18:
		return Afternoon, nil
	default:
		return Evening, nil
	}
}

// Group partitions reminders into time-of-day buckets, preserving input
// order within each bucket. Empty buckets are absent from the result.
// Reminders with an unparseable time sort into Evening so they are still
// shown somewhere rather than dropped.
func Group(reminders []models.Reminder) map[TimeOfDay][]models.Reminder {
	grouped := make(map[TimeOfDay][]models.Reminder)
	for _, r := range reminders {
		bucket, err := Classify(r.Time)
		if err != nil {
			bucket = Evening
		}
		grouped[bucket] = append(grouped[bucket], r)
	}
	return grouped
}
