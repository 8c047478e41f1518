package devstub

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/techiefinder/client/internal/core/domain"
)

// Every seeded account logs in with this password.
const seedPassword = "password123"

type account struct {
	identity     domain.Identity
	passwordHash []byte
}

type dataset struct {
	mu          sync.Mutex
	nextUserID  int64
	accounts    map[string]*account // keyed by email
	technicians []domain.Technician
	bookings    []domain.Booking
	categories  []domain.Category
}

func seed() *dataset {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("devstub: seeding password hash: " + err.Error())
	}

	d := &dataset{
		nextUserID: 100,
		accounts:   make(map[string]*account),
	}

	for _, identity := range []domain.Identity{
		{ID: 1, FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com", PhoneNumber: "5512345678", Role: domain.RoleUser},
		{ID: 2, FirstName: "Tomás", LastName: "Vidal", Email: "tomas@example.com", PhoneNumber: "5587654321", Role: domain.RoleTechnician},
	} {
		d.accounts[identity.Email] = &account{identity: identity, passwordHash: hash}
	}

	d.technicians = []domain.Technician{
		{
			ID: 2, FirstName: "Tomás", LastName: "Vidal", BusinessName: "Vidal Plumbing",
			Bio: "Residential plumbing, 24h emergency calls", AverageRating: 4.8,
			TotalRatings: 57, CompletedJobs: 112, YearsOfExperience: 9, IsVerified: true,
			Services: []domain.TechnicianService{
				{ID: 1, Name: "Leak repair", BasePrice: 45, Category: "plumbing"},
				{ID: 2, Name: "Boiler installation", BasePrice: 220, Category: "plumbing"},
			},
			Portfolio: []domain.PortfolioItem{
				{ID: 1, Title: "Apartment re-pipe", Description: "Full copper re-pipe, 3 bathrooms"},
			},
		},
		{
			ID: 3, FirstName: "Marta", LastName: "Luna",
			Bio: "Certified electrician", AverageRating: 4.6,
			TotalRatings: 33, CompletedJobs: 64, YearsOfExperience: 6, IsVerified: true,
			Services: []domain.TechnicianService{
				{ID: 3, Name: "Panel upgrade", BasePrice: 300, Category: "electrical"},
			},
		},
		{
			ID: 4, FirstName: "Diego", LastName: "Franco",
			YearsOfExperience: 2,
			Services: []domain.TechnicianService{
				{ID: 4, Name: "Furniture assembly", BasePrice: 30, Category: "carpentry"},
			},
		},
	}

	scheduled := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	d.bookings = []domain.Booking{
		{
			ID: 10, BookingNumber: "BK-2024-0010", UserID: 1, TechnicianID: 2,
			Status: domain.BookingPending, ScheduledDateTime: scheduled,
			ServiceDescription: "Kitchen sink leak", ServiceAddress: "Av. Reforma 12",
			EstimatedPrice: 45, PaymentStatus: "UNPAID",
		},
		{
			ID: 11, BookingNumber: "BK-2024-0011", UserID: 1, TechnicianID: 3,
			Status: domain.BookingCompleted, ScheduledDateTime: scheduled.Add(-96 * time.Hour),
			ServiceDescription: "Replace breaker panel", ServiceAddress: "Av. Reforma 12",
			EstimatedPrice: 300, FinalPrice: 280, PaymentStatus: "PAID",
		},
	}

	d.categories = []domain.Category{
		{ID: 1, Name: "Plumbing", Slug: "plumbing", Description: "Pipes, leaks and water heaters"},
		{ID: 2, Name: "Electrical", Slug: "electrical", Description: "Wiring, panels and lighting"},
		{ID: 3, Name: "Carpentry", Slug: "carpentry"},
		{ID: 4, Name: "Appliance Repair", Slug: "appliance-repair"},
	}

	return d
}

// createAccount registers a new user, enforcing email uniqueness.
func (d *dataset) createAccount(input domain.RegisterInput, hash []byte) (*domain.Identity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.accounts[input.Email]; exists {
		return nil, errUserExists
	}
	d.nextUserID++
	identity := domain.Identity{
		ID:          d.nextUserID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}
	d.accounts[input.Email] = &account{identity: identity, passwordHash: hash}
	return &identity, nil
}

// findAccount looks an account up by email.
func (d *dataset) findAccount(email string) (*account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.accounts[email]
	return acc, ok
}
