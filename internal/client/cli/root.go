package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Aneeb1231/rxease/internal/client/services"
)

func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	name := u.Name
	if name == "" {
		name = u.Email
	}
	return fmt.Sprintf("(%s)", name)
}

// Root restores a previously persisted session, then hands control to the
// interactive loop. It blocks until the user exits.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to RxEase CLI (type 'help' for commands)")

	user, err := a.session.Validate(ctx)
	switch {
	case err == nil:
		fmt.Printf("Welcome back, %s!\n", user.Name)
	case errors.Is(err, services.ErrNotAuthenticated):
		// no stored session, start anonymous
	default:
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
