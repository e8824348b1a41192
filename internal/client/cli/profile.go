package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/models"
)

// ShowProfile fetches and prints the user's profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profile.Get(ctx)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not load the profile."))
		return err
	}

	for _, f := range []struct{ label, value string }{
		{"Name", p.Name},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Address", p.Address},
		{"Date of birth", p.DateOfBirth},
		{"Blood group", p.BloodGroup},
		{"Allergies", p.Allergies},
		{"Medical history", p.MedicalHistory},
		{"Emergency contact", p.EmergencyContact},
		{"Profile image", p.ProfileImage},
	} {
		if f.value != "" {
			fmt.Printf("%s: %s\n", f.label, f.value)
		}
	}
	return nil
}

// EditProfile prompts for profile fields and submits the update. Fields left
// blank are untouched, so a partial edit never erases existing data.
func (a *App) EditProfile(ctx context.Context) error {
	fmt.Println("Leave a field blank to keep its current value.")

	var update models.Profile
	var err error

	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &update.Name},
		{"Phone", &update.Phone},
		{"Address", &update.Address},
		{"Date of birth (YYYY-MM-DD)", &update.DateOfBirth},
		{"Blood group", &update.BloodGroup},
		{"Allergies", &update.Allergies},
		{"Emergency contact", &update.EmergencyContact},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.label, os.Stdout); err != nil {
			return err
		}
	}

	if update.MedicalHistory, err = GetMultiline(a.reader, "Medical history", os.Stdout); err != nil {
		return err
	}

	saved, err := a.profile.Update(ctx, update)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not update the profile."))
		return err
	}

	fmt.Printf("Profile updated for %s.\n", saved.Name)
	return nil
}

// UploadPhoto reads a local image file and uploads it as the profile picture.
func (a *App) UploadPhoto(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter image file path", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Could not open %s: %v\n", path, err)
		return err
	}
	defer f.Close()

	url, err := a.profile.UploadImage(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not upload the image."))
		return err
	}

	fmt.Printf("Image uploaded: %s\n", url)
	return nil
}
