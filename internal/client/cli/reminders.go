package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
	"github.com/Aneeb1231/rxease/internal/client/services"
	"github.com/Aneeb1231/rxease/internal/schedule"
)

// displayStatus resolves the status shown for a reminder. Reminders the user
// never acted on read as "missed" once their day has passed, without the
// backend ever storing that value.
func displayStatus(r models.Reminder, today time.Time) string {
	switch r.Status {
	case models.StatusTaken:
		return "taken"
	case models.StatusMissed:
		return "missed"
	}
	d, err := r.Day()
	if err != nil {
		return "scheduled"
	}
	if d.Before(schedule.Midnight(today)) {
		return "missed"
	}
	return "upcoming"
}

func printReminder(r models.Reminder, today time.Time) {
	fmt.Printf("%s  %s %s  %s %s  [%s]\n",
		r.ID, r.Date, r.Time, r.Medication, r.Dosage, displayStatus(r, today))
	if r.Notes != "" {
		fmt.Printf("    notes: %s\n", r.Notes)
	}
}

func (a *App) loadReminders(ctx context.Context) ([]models.Reminder, error) {
	items, err := a.reminders.List(ctx)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not load reminders."))
		return nil, err
	}
	return items, nil
}

// Today prints the reminder schedule grouped into morning, afternoon and
// evening buckets. Empty buckets are skipped.
func (a *App) Today(ctx context.Context) error {
	items, err := a.loadReminders(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No reminders scheduled.")
		return nil
	}

	now := time.Now()
	grouped := schedule.Group(items)
	for _, bucket := range schedule.BucketOrder {
		rs, ok := grouped[bucket]
		if !ok {
			continue
		}
		fmt.Printf("--- %s ---\n", bucket)
		for _, r := range rs {
			printReminder(r, now)
		}
	}
	return nil
}

// AddReminder collects the reminder fields and schedules a new intake.
func (a *App) AddReminder(ctx context.Context) error {
	var r models.Reminder
	var err error

	fields := []struct {
		label string
		dst   *string
	}{
		{"Medication", &r.Medication},
		{"Dosage", &r.Dosage},
		{"Time (HH:MM, 24-hour)", &r.Time},
		{"Date (YYYY-MM-DD)", &r.Date},
		{"Notes (optional)", &r.Notes},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.label, os.Stdout); err != nil {
			return err
		}
	}

	draft := models.NewDraft(r)
	saved, err := a.reminders.Create(ctx, draft.Record)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fmt.Printf("Missing required fields: %s\n", strings.Join(ve.Fields, ", "))
			return err
		}
		a.logger.Error(ctx, "reminder save failed", "draft", draft.Ref, "error", err)
		fmt.Println(api.UserMessage(err, "Could not save the reminder."))
		return err
	}

	fmt.Printf("Scheduled reminder %s\n", saved.ID)
	return nil
}

// EditReminder updates an existing reminder. Fields left blank keep their
// current value.
func (a *App) EditReminder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reminder id to edit", os.Stdout)
	if err != nil {
		return err
	}

	var base models.Reminder
	for _, r := range a.reminders.Cached() {
		if r.ID == id {
			base = r
			break
		}
	}
	if base.ID == "" {
		fmt.Println("Reminder not found. Run 'today' first.")
		return nil
	}

	fields := []struct {
		label string
		dst   *string
	}{
		{"Medication", &base.Medication},
		{"Dosage", &base.Dosage},
		{"Time (HH:MM, 24-hour)", &base.Time},
		{"Date (YYYY-MM-DD)", &base.Date},
		{"Notes (optional)", &base.Notes},
	}
	for _, f := range fields {
		if *f.dst, err = a.promptField(f.label, *f.dst); err != nil {
			return err
		}
	}

	draft := models.NewDraft(base)
	saved, err := a.reminders.Update(ctx, id, draft.Record)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fmt.Printf("Missing required fields: %s\n", strings.Join(ve.Fields, ", "))
			return err
		}
		a.logger.Error(ctx, "reminder update failed", "draft", draft.Ref, "error", err)
		fmt.Println(api.UserMessage(err, "Could not update the reminder."))
		return err
	}

	fmt.Printf("Updated reminder %s\n", saved.ID)
	return nil
}

// DeleteReminder removes a reminder by its identifier.
func (a *App) DeleteReminder(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reminder id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.reminders.Delete(ctx, id); err != nil {
		fmt.Println(api.UserMessage(err, "Could not delete the reminder."))
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// MarkTaken records that a dose was taken. The transition is one-way.
func (a *App) MarkTaken(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter reminder id to mark as taken", os.Stdout)
	if err != nil {
		return err
	}

	r, err := a.reminders.MarkTaken(ctx, id)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not update the reminder."))
		return err
	}

	fmt.Printf("Marked %s %s as taken.\n", r.Medication, r.Dosage)
	return nil
}

// Stats prints adherence counters over all reminders.
func (a *App) Stats(ctx context.Context) error {
	items := a.reminders.Cached()
	if len(items) == 0 {
		var err error
		if items, err = a.loadReminders(ctx); err != nil {
			return err
		}
	}

	s := schedule.ComputeStats(items, time.Now())
	fmt.Printf("Total: %d  Taken: %d  Missed: %d  Upcoming: %d\n",
		s.Total, s.Taken, s.Missed, s.Upcoming)
	return nil
}

// Calendar prints the dose count for each of the upcoming days, starting today.
func (a *App) Calendar(ctx context.Context) error {
	items := a.reminders.Cached()
	if len(items) == 0 {
		var err error
		if items, err = a.loadReminders(ctx); err != nil {
			return err
		}
	}

	for day := range schedule.Calendar(items, time.Now(), schedule.DefaultCalendarDays) {
		marker := " "
		if day.Count > 0 {
			marker = "*"
		}
		fmt.Printf("%s %s  %d dose(s)\n", marker, day.Date.Format("Mon Jan 02"), day.Count)
	}
	return nil
}
