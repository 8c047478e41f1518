package ports

import (
	"context"

	"github.com/techiefinder/client/internal/core/domain"
)

// AuthGateway is the slice of the backend the session service needs.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
}

// CatalogGateway covers the public browse/search surface.
type CatalogGateway interface {
	AvailableTechnicians(ctx context.Context, query domain.TechnicianQuery) ([]domain.Technician, error)
	TechnicianByID(ctx context.Context, id int64) (*domain.Technician, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// BookingGateway covers the authenticated dashboard reads.
type BookingGateway interface {
	BookingsForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	BookingsForTechnician(ctx context.Context, technicianID int64) ([]domain.Booking, error)
}

// Gateway is the full backend surface the client consumes.
type Gateway interface {
	AuthGateway
	CatalogGateway
	BookingGateway
}
