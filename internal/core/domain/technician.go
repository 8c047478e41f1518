package domain

import "fmt"

// TechnicianService is a single service a technician offers.
type TechnicianService struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"basePrice,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// PortfolioItem is a past-work entry shown on the profile screen.
type PortfolioItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Technician is the read-only projection the client renders in search
// results and on the profile screen. The summary endpoints omit Services
// and Portfolio; only the detail endpoint fills them in.
type Technician struct {
	ID                int64               `json:"id"`
	FirstName         string              `json:"firstName"`
	LastName          string              `json:"lastName"`
	BusinessName      string              `json:"businessName,omitempty"`
	Bio               string              `json:"bio,omitempty"`
	AverageRating     float64             `json:"averageRating,omitempty"`
	TotalRatings      int                 `json:"totalRatings,omitempty"`
	CompletedJobs     int                 `json:"completedJobs,omitempty"`
	YearsOfExperience int                 `json:"yearsOfExperience,omitempty"`
	IsVerified        bool                `json:"isVerified,omitempty"`
	Services          []TechnicianService `json:"services,omitempty"`
	Portfolio         []PortfolioItem     `json:"portfolio,omitempty"`
}

// Display helpers mirror the placeholders the screens show for absent fields.

func (t Technician) DisplayName() string {
	switch {
	case t.FirstName == "" && t.LastName == "":
		return t.BusinessName
	case t.LastName == "":
		return t.FirstName
	default:
		return t.FirstName + " " + t.LastName
	}
}

func (t Technician) DisplayBio() string {
	if t.Bio == "" {
		return "Professional technician"
	}
	return t.Bio
}

func (t Technician) DisplayRating() string {
	if t.AverageRating <= 0 {
		return "5.0"
	}
	return fmt.Sprintf("%.1f", t.AverageRating)
}

// TechnicianQuery holds the optional filters for the available-technicians
// search. Zero values mean "not set" and are omitted from the request.
type TechnicianQuery struct {
	Category  string
	Location  string
	MinRating float64
	Search    string
	Limit     int
}
