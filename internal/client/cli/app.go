package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Aneeb1231/rxease/internal/client/api"
	"github.com/Aneeb1231/rxease/internal/client/config"
	"github.com/Aneeb1231/rxease/internal/client/models"
	"github.com/Aneeb1231/rxease/internal/client/services"
	"github.com/Aneeb1231/rxease/internal/client/storage"
	"github.com/Aneeb1231/rxease/internal/logging"
	"github.com/Aneeb1231/rxease/internal/medicines"
)

// The App depends on narrow consumer-side interfaces rather than the
// concrete service types so command handlers can be tested with fakes.

type sessionManager interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context) error
	Validate(ctx context.Context) (*models.User, error)
	User() *models.User
	IsAuthenticated() bool
}

type prescriptionManager interface {
	List(ctx context.Context) ([]models.Prescription, error)
	Create(ctx context.Context, draft models.Prescription) (models.Prescription, error)
	Update(ctx context.Context, id string, draft models.Prescription) (models.Prescription, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id, recipientEmail string) (string, error)
	FilterHistory(filter services.HistoryFilter) []models.Prescription
	DoctorNames() []string
	Cached() []models.Prescription
	Reset()
}

type reminderManager interface {
	List(ctx context.Context) ([]models.Reminder, error)
	Create(ctx context.Context, draft models.Reminder) (models.Reminder, error)
	Update(ctx context.Context, id string, draft models.Reminder) (models.Reminder, error)
	Delete(ctx context.Context, id string) error
	MarkTaken(ctx context.Context, id string) (models.Reminder, error)
	Cached() []models.Reminder
	Reset()
}

type profileManager interface {
	Get(ctx context.Context) (models.Profile, error)
	Update(ctx context.Context, update models.Profile) (models.Profile, error)
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
	Reset()
}

type medicineLookup interface {
	Lookup(ctx context.Context, query string) (medicines.Medicine, error)
}

type App struct {
	config        *config.Config
	session       sessionManager
	prescriptions prescriptionManager
	reminders     reminderManager
	profile       profileManager
	catalog       medicineLookup
	logger        logging.Logger
	reader        *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewZerologLogger(
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	)

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewREST(c.APIBaseURL, c.RequestTimeout)

	catalog, err := medicines.NewCatalog(func(ctx context.Context) ([]byte, error) {
		return apiClient.FetchDocument(ctx, c.MedicineCSVURL)
	})
	if err != nil {
		return nil, err
	}

	return &App{
		config:        c,
		session:       services.NewSessionStore(apiClient, db),
		prescriptions: services.NewPrescriptionService(apiClient),
		reminders:     services.NewReminderService(apiClient),
		profile:       services.NewProfileService(apiClient),
		catalog:       catalog,
		logger:        logger,
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// resetCaches drops every record cached under the previous identity.
func (a *App) resetCaches() {
	a.prescriptions.Reset()
	a.reminders.Reset()
	a.profile.Reset()
}
