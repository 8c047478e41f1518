package ports

import (
	"context"

	"github.com/techiefinder/client/internal/core/domain"
)

// SessionService is the single writer of authentication state. Screens and
// the router read snapshots; only the service mutates them.
type SessionService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, input domain.RegisterInput) error
	Logout(ctx context.Context) error
	Current() domain.Session
	Subscribe(fn func(domain.Session)) (unsubscribe func())
}
