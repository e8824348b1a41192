package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
)

// ErrInvalidRecipientEmail is reported by Share before any network call.
var ErrInvalidRecipientEmail = errors.New("invalid recipient email")

// PrescriptionService manages the user's prescriptions and the share and
// history-filtering operations specific to them.
type PrescriptionService struct {
	*Collection[models.Prescription]
}

func NewPrescriptionService(client api.Client) *PrescriptionService {
	return &PrescriptionService{Collection: NewCollection[models.Prescription](client, "/prescriptions")}
}

// Create applies the side-effects sentinel before the usual validate-and-
// persist flow.
func (s *PrescriptionService) Create(ctx context.Context, draft models.Prescription) (models.Prescription, error) {
	return s.Collection.Create(ctx, draft.Normalized())
}

// Update applies the side-effects sentinel before the usual flow.
func (s *PrescriptionService) Update(ctx context.Context, id string, draft models.Prescription) (models.Prescription, error) {
	return s.Collection.Update(ctx, id, draft.Normalized())
}

// Share emails a prescription to recipientEmail via the backend and returns
// its confirmation message.
func (s *PrescriptionService) Share(ctx context.Context, id, recipientEmail string) (string, error) {
	if !strings.Contains(recipientEmail, "@") || !strings.Contains(recipientEmail, ".") {
		return "", ErrInvalidRecipientEmail
	}

	var resp struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/prescriptions/%s/share", id)
	if err := s.client.Do(ctx, http.MethodPost, path, map[string]string{"recipientEmail": recipientEmail}, &resp); err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "Prescription shared with " + recipientEmail
	}
	return resp.Message, nil
}

// HistoryFilter narrows the cached prescription list. Every criterion is
// optional; blank criteria match everything.
type HistoryFilter struct {
	Date   string // substring of the record's date, e.g. "2026-08"
	Doctor string // case-insensitive substring of the doctor's name
	Term   string // free text over medication, doctor, and patient names
}

// FilterHistory applies filter to the cached prescriptions, preserving order.
func (s *PrescriptionService) FilterHistory(filter HistoryFilter) []models.Prescription {
	doctor := strings.ToLower(filter.Doctor)
	term := strings.ToLower(filter.Term)

	matched := make([]models.Prescription, 0, len(s.Cached()))
	for _, p := range s.Cached() {
		if filter.Date != "" && !strings.Contains(p.Date, filter.Date) {
			continue
		}
		if doctor != "" && !strings.Contains(strings.ToLower(p.DoctorName), doctor) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.MedicationName), term) &&
			!strings.Contains(strings.ToLower(p.DoctorName), term) &&
			!strings.Contains(strings.ToLower(p.PatientName), term) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// DoctorNames returns the distinct doctor names of the cached prescriptions
// in first-seen order, for filter dropdowns.
func (s *PrescriptionService) DoctorNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range s.Cached() {
		if p.DoctorName == "" {
			continue
		}
		if _, ok := seen[p.DoctorName]; ok {
			continue
		}
		seen[p.DoctorName] = struct{}{}
		names = append(names, p.DoctorName)
	}
	return names
}
