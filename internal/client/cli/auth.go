package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and attempts to create a
// new account. On success the session is established immediately and the
// user's name is printed. The password byte slice is securely wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Register(ctx, name, email, string(password))
	if err != nil {
		fmt.Println(api.UserMessage(err, "Registration failed. Please try again."))
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// token and identity are persisted locally so the session survives restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(api.UserMessage(err, "Login failed. Please check your credentials."))
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// ForgotPassword asks for an email and requests a reset link. The backend's
// acknowledgement is shown verbatim; the flow completes out of band.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.session.RequestPasswordReset(ctx, email)
	if err != nil {
		fmt.Println(api.UserMessage(err, "Could not request a password reset."))
		return err
	}

	fmt.Println(msg)
	return nil
}

// Logout clears the local session and every cached record. The backend is
// not contacted; the token simply stops being used.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "logout cleanup failed", "error", err)
	}
	a.resetCaches()
	fmt.Println("Logged out.")
	return nil
}
