package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
)

// ReminderService manages the user's medication reminders.
type ReminderService struct {
	*Collection[models.Reminder]
}

func NewReminderService(client api.Client) *ReminderService {
	return &ReminderService{Collection: NewCollection[models.Reminder](client, "/reminders")}
}

// MarkTaken flips a reminder's status to taken; the backend stamps takenAt.
// The cached record is replaced with the backend response. A reminder never
// transitions away from taken, so there is no inverse operation.
func (s *ReminderService) MarkTaken(ctx context.Context, id string) (models.Reminder, error) {
	var updated models.Reminder
	path := fmt.Sprintf("/reminders/%s/taken", id)
	if err := s.client.Do(ctx, http.MethodPut, path, map[string]string{}, &updated); err != nil {
		return updated, err
	}
	s.Replace(updated)
	return updated, nil
}
