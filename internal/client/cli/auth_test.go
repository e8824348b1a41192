package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Aneeb1231/rxease/internal/client/models"
	"github.com/Aneeb1231/rxease/internal/client/services"
	"github.com/Aneeb1231/rxease/internal/logging"
	"github.com/Aneeb1231/rxease/internal/medicines"
)

// stubTextInputs replaces getSimpleText with a stub that returns the given
// values in order, then empty strings. stubPassword does the same for the
// password prompt.
func stubTextInputs(t *testing.T, values ...string) func() {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i < len(values) {
			v := values[i]
			i++
			return v, nil
		}
		return "", nil
	}
	return func() { getSimpleText = orig }
}

func stubPassword(t *testing.T, pw []byte) func() {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), pw...), nil }
	return func() { getPassword = orig }
}

func nopLogger() logging.Logger {
	return logging.NewZerologLogger(zerolog.Nop())
}

type fakeSession struct {
	user *models.User

	loginEmail   string
	loginPass    string
	loginErr     error
	regName      string
	regEmail     string
	regPass      string
	regErr       error
	resetEmail   string
	resetMsg     string
	resetErr     error
	logoutCalled bool
	logoutErr    error
	validateUser *models.User
	validateErr  error
}

func (f *fakeSession) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &models.User{Name: "Sara", Email: email}
	return f.user, nil
}

func (f *fakeSession) Register(_ context.Context, name, email, password string) (*models.User, error) {
	f.regName, f.regEmail, f.regPass = name, email, password
	if f.regErr != nil {
		return nil, f.regErr
	}
	f.user = &models.User{Name: name, Email: email}
	return f.user, nil
}

func (f *fakeSession) RequestPasswordReset(_ context.Context, email string) (string, error) {
	f.resetEmail = email
	return f.resetMsg, f.resetErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	f.user = nil
	return f.logoutErr
}

func (f *fakeSession) Validate(context.Context) (*models.User, error) {
	return f.validateUser, f.validateErr
}

func (f *fakeSession) User() *models.User    { return f.user }
func (f *fakeSession) IsAuthenticated() bool { return f.user != nil }

type fakePrescriptions struct {
	items     []models.Prescription
	resetDone bool
}

func (f *fakePrescriptions) List(context.Context) ([]models.Prescription, error) {
	return f.items, nil
}
func (f *fakePrescriptions) Create(_ context.Context, draft models.Prescription) (models.Prescription, error) {
	if missing := draft.MissingFields(); missing != nil {
		return models.Prescription{}, &services.ValidationError{Fields: missing}
	}
	draft.ID = "p1"
	return draft, nil
}
func (f *fakePrescriptions) Update(_ context.Context, id string, draft models.Prescription) (models.Prescription, error) {
	draft.ID = id
	return draft, nil
}
func (f *fakePrescriptions) Delete(context.Context, string) error { return nil }
func (f *fakePrescriptions) Share(_ context.Context, _, email string) (string, error) {
	if email == "bad" {
		return "", services.ErrInvalidRecipientEmail
	}
	return "Prescription shared successfully via email", nil
}
func (f *fakePrescriptions) FilterHistory(services.HistoryFilter) []models.Prescription {
	return f.items
}
func (f *fakePrescriptions) DoctorNames() []string         { return nil }
func (f *fakePrescriptions) Cached() []models.Prescription { return f.items }
func (f *fakePrescriptions) Reset()                        { f.resetDone = true }

type fakeReminders struct {
	items     []models.Reminder
	updated   models.Reminder
	takenID   string
	resetDone bool
}

func (f *fakeReminders) List(context.Context) ([]models.Reminder, error) { return f.items, nil }
func (f *fakeReminders) Create(_ context.Context, draft models.Reminder) (models.Reminder, error) {
	draft.ID = "r1"
	return draft, nil
}
func (f *fakeReminders) Update(_ context.Context, id string, draft models.Reminder) (models.Reminder, error) {
	if missing := draft.MissingFields(); missing != nil {
		return models.Reminder{}, &services.ValidationError{Fields: missing}
	}
	draft.ID = id
	f.updated = draft
	return draft, nil
}
func (f *fakeReminders) Delete(context.Context, string) error { return nil }
func (f *fakeReminders) MarkTaken(_ context.Context, id string) (models.Reminder, error) {
	f.takenID = id
	return models.Reminder{ID: id, Medication: "Panadol", Dosage: "500mg", Status: models.StatusTaken}, nil
}
func (f *fakeReminders) Cached() []models.Reminder { return f.items }
func (f *fakeReminders) Reset()                    { f.resetDone = true }

type fakeProfile struct {
	current   models.Profile
	resetDone bool
}

func (f *fakeProfile) Get(context.Context) (models.Profile, error) { return f.current, nil }
func (f *fakeProfile) Update(_ context.Context, update models.Profile) (models.Profile, error) {
	f.current = f.current.Merge(update)
	return f.current, nil
}
func (f *fakeProfile) UploadImage(context.Context, string, io.Reader) (string, error) {
	return "https://cdn.example/img.png", nil
}
func (f *fakeProfile) Reset() { f.resetDone = true }

type fakeCatalog struct {
	m   medicines.Medicine
	err error
}

func (f *fakeCatalog) Lookup(context.Context, string) (medicines.Medicine, error) {
	return f.m, f.err
}

func newTestApp(s *fakeSession, p *fakePrescriptions, r *fakeReminders, pr *fakeProfile) *App {
	return &App{
		session:       s,
		prescriptions: p,
		reminders:     r,
		profile:       pr,
		catalog:       &fakeCatalog{},
		logger:        nopLogger(),
		reader:        bufio.NewReader(strings.NewReader("")),
	}
}

func TestRegister_Success(t *testing.T) {
	f := &fakeSession{}
	a := newTestApp(f, &fakePrescriptions{}, &fakeReminders{}, &fakeProfile{})

	restoreText := stubTextInputs(t, "Sara Khan", "sara@example.org")
	defer restoreText()
	restorePw := stubPassword(t, []byte("secret"))
	defer restorePw()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regName != "Sara Khan" || f.regEmail != "sara@example.org" {
		t.Fatalf("Register inputs mismatch: %q %q", f.regName, f.regEmail)
	}
	if f.regPass != "secret" {
		t.Fatalf("Register pass mismatch: %q", f.regPass)
	}
	if !a.isLoggedIn() {
		t.Fatal("expected logged-in state after registration")
	}
}

func TestLogin_ErrorPropagates(t *testing.T) {
	f := &fakeSession{loginErr: errors.New("invalid credentials")}
	a := newTestApp(f, &fakePrescriptions{}, &fakeReminders{}, &fakeProfile{})

	restoreText := stubTextInputs(t, "sara@example.org")
	defer restoreText()
	restorePw := stubPassword(t, []byte("wrong"))
	defer restorePw()

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("want error from Login")
	}
	if a.isLoggedIn() {
		t.Fatal("must not be logged in after failure")
	}
}

func TestForgotPassword(t *testing.T) {
	f := &fakeSession{resetMsg: "Reset link sent to your email"}
	a := newTestApp(f, &fakePrescriptions{}, &fakeReminders{}, &fakeProfile{})

	restoreText := stubTextInputs(t, "sara@example.org")
	defer restoreText()

	if err := a.ForgotPassword(context.Background()); err != nil {
		t.Fatalf("ForgotPassword err: %v", err)
	}
	if f.resetEmail != "sara@example.org" {
		t.Fatalf("reset email mismatch: %q", f.resetEmail)
	}
}

func TestLogout_ResetsCaches(t *testing.T) {
	f := &fakeSession{user: &models.User{Name: "Sara"}}
	p := &fakePrescriptions{}
	r := &fakeReminders{}
	pr := &fakeProfile{}
	a := newTestApp(f, p, r, pr)

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("session Logout not called")
	}
	if !p.resetDone || !r.resetDone || !pr.resetDone {
		t.Fatal("caches not reset on logout")
	}
	if a.isLoggedIn() {
		t.Fatal("still logged in after logout")
	}
}
