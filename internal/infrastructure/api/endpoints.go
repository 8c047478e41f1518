package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/core/ports"
)

var _ ports.Gateway = (*Client)(nil)

// Login exchanges credentials for a bearer token and the identity.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result domain.AuthResult
	if err := c.request(ctx, http.MethodPost, "/auth/login", nil, body, &result, "login"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates an account; a successful registration also returns a
// token, so the caller is logged in immediately.
func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	var result domain.AuthResult
	if err := c.request(ctx, http.MethodPost, "/auth/register", nil, input, &result, "register"); err != nil {
		return nil, err
	}
	return &result, nil
}

// AvailableTechnicians lists technicians currently accepting jobs, filtered
// by the optional query fields.
func (c *Client) AvailableTechnicians(ctx context.Context, query domain.TechnicianQuery) ([]domain.Technician, error) {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.MinRating > 0 {
		params.Set("minRating", strconv.FormatFloat(query.MinRating, 'f', -1, 64))
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	var technicians []domain.Technician
	if err := c.request(ctx, http.MethodGet, "/technicians/available", params, nil, &technicians, "technicians_available"); err != nil {
		return nil, err
	}
	return technicians, nil
}

// TechnicianByID fetches the full profile, including services and portfolio.
func (c *Client) TechnicianByID(ctx context.Context, id int64) (*domain.Technician, error) {
	var technician domain.Technician
	path := fmt.Sprintf("/technicians/%d", id)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &technician, "technician_detail"); err != nil {
		return nil, err
	}
	return &technician, nil
}

// BookingsForUser lists a customer's bookings. Requires authentication.
func (c *Client) BookingsForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	path := fmt.Sprintf("/bookings/user/%d", userID)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &bookings, "bookings_user"); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookingsForTechnician lists a technician's job requests. Requires
// authentication.
func (c *Client) BookingsForTechnician(ctx context.Context, technicianID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	path := fmt.Sprintf("/bookings/technician/%d", technicianID)
	if err := c.request(ctx, http.MethodGet, path, nil, nil, &bookings, "bookings_technician"); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Categories lists the public service categories.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.request(ctx, http.MethodGet, "/public/categories", nil, nil, &categories, "categories"); err != nil {
		return nil, err
	}
	return categories, nil
}
