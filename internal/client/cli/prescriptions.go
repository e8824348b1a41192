package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
	"github.com/Aneeb1231/rxease/internal/client/services"
)

// promptField reads a value for a single prescription field. When a current
// value exists, it is shown and kept if the user enters a blank line.
func (a *App) promptField(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (a *App) promptPrescription(base models.Prescription) (models.Prescription, error) {
	var err error
	fields := []struct {
		label string
		dst   *string
	}{
		{"Patient name", &base.PatientName},
		{"Doctor name", &base.DoctorName},
		{"Date (YYYY-MM-DD)", &base.Date},
		{"Medication", &base.MedicationName},
		{"Dosage", &base.Dosage},
		{"Instructions", &base.Instructions},
		{"Side effects (optional)", &base.SideEffects},
	}
	for _, f := range fields {
		if *f.dst, err = a.promptField(f.label, *f.dst); err != nil {
			return base, err
		}
	}
	return base, nil
}

func printPrescription(p models.Prescription) {
	fmt.Printf("%s  %s  %s\n", p.ID, p.Date, p.MedicationName)
	fmt.Printf("    patient: %s, doctor: %s\n", p.PatientName, p.DoctorName)
	fmt.Printf("    dosage: %s, instructions: %s\n", p.Dosage, p.Instructions)
	if p.SideEffects != "" {
		fmt.Printf("    side effects: %s\n", p.SideEffects)
	}
}

// ListPrescriptions fetches the user's prescriptions and prints them.
func (a *App) ListPrescriptions(ctx context.Context) error {
	items, err := a.prescriptions.List(ctx)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not load prescriptions."))
		return err
	}
	if len(items) == 0 {
		fmt.Println("No prescriptions yet.")
		return nil
	}
	for _, p := range items {
		printPrescription(p)
	}
	return nil
}

// AddPrescription collects the prescription fields and saves a new record.
func (a *App) AddPrescription(ctx context.Context) error {
	p, err := a.promptPrescription(models.Prescription{})
	if err != nil {
		return err
	}

	draft := models.NewDraft(p)
	saved, err := a.prescriptions.Create(ctx, draft.Record)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fmt.Printf("Missing required fields: %s\n", strings.Join(ve.Fields, ", "))
			return err
		}
		a.logger.Error(ctx, "prescription save failed", "draft", draft.Ref, "error", err)
		fmt.Println(api.UserMessage(err, "Could not save the prescription."))
		return err
	}

	fmt.Printf("Saved prescription %s\n", saved.ID)
	return nil
}

// EditPrescription updates an existing record. Fields left blank keep their
// current value.
func (a *App) EditPrescription(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter prescription id to edit", os.Stdout)
	if err != nil {
		return err
	}

	var base models.Prescription
	for _, p := range a.prescriptions.Cached() {
		if p.ID == id {
			base = p
			break
		}
	}
	if base.ID == "" {
		fmt.Println("Prescription not found. Run 'list' first.")
		return nil
	}

	p, err := a.promptPrescription(base)
	if err != nil {
		return err
	}

	draft := models.NewDraft(p)
	saved, err := a.prescriptions.Update(ctx, id, draft.Record)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fmt.Printf("Missing required fields: %s\n", strings.Join(ve.Fields, ", "))
			return err
		}
		a.logger.Error(ctx, "prescription update failed", "draft", draft.Ref, "error", err)
		fmt.Println(api.UserMessage(err, "Could not update the prescription."))
		return err
	}

	fmt.Printf("Updated prescription %s\n", saved.ID)
	return nil
}

// DeletePrescription removes a record by its identifier after confirmation.
func (a *App) DeletePrescription(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter prescription id to delete", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, "Delete this prescription? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.prescriptions.Delete(ctx, id); err != nil {
		fmt.Println(api.UserMessage(err, "Could not delete the prescription."))
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// SharePrescription emails a prescription to the given recipient.
func (a *App) SharePrescription(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter prescription id to share", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter recipient email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.prescriptions.Share(ctx, id, email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRecipientEmail) {
			fmt.Println("Please enter a valid email address.")
			return err
		}
		fmt.Println(api.UserMessage(err, "Could not share the prescription."))
		return err
	}

	fmt.Println(msg)
	return nil
}

// History browses the cached prescriptions with optional date, doctor and
// free-text filters. All filters are applied together.
func (a *App) History(ctx context.Context) error {
	if len(a.prescriptions.Cached()) == 0 {
		if _, err := a.prescriptions.List(ctx); err != nil {
			fmt.Println(api.UserMessage(err, "Could not load prescriptions."))
			return err
		}
	}

	if doctors := a.prescriptions.DoctorNames(); len(doctors) > 0 {
		fmt.Printf("Doctors: %s\n", strings.Join(doctors, ", "))
	}

	date, err := getSimpleText(a.reader, "Filter by date (YYYY-MM-DD, blank for all)", os.Stdout)
	if err != nil {
		return err
	}
	doctor, err := getSimpleText(a.reader, "Filter by doctor (blank for all)", os.Stdout)
	if err != nil {
		return err
	}
	term, err := getSimpleText(a.reader, "Search text (blank for all)", os.Stdout)
	if err != nil {
		return err
	}

	matches := a.prescriptions.FilterHistory(services.HistoryFilter{
		Date:   date,
		Doctor: doctor,
		Term:   term,
	})
	if len(matches) == 0 {
		fmt.Println("No prescriptions match.")
		return nil
	}
	for _, p := range matches {
		printPrescription(p)
	}
	return nil
}
