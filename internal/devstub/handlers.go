package devstub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/techiefinder/client/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=USER TECHNICIAN"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	acc, ok := s.data.findAccount(req.Email)
	if !ok {
		return errInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		return errInvalidCredentials
	}

	token, err := s.issueToken(&acc.identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.AuthResult{AccessToken: token, User: acc.identity})
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	identity, err := s.data.createAccount(domain.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.Role(req.Role),
	}, hash)
	if err != nil {
		return err
	}

	token, err := s.issueToken(identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, domain.AuthResult{AccessToken: token, User: *identity})
}

func (s *Server) availableTechnicians(c echo.Context) error {
	category := c.QueryParam("category")
	location := c.QueryParam("location")
	search := strings.ToLower(c.QueryParam("search"))
	minRating, _ := strconv.ParseFloat(c.QueryParam("minRating"), 64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	_ = location // seed data carries no locations; accepted and ignored

	results := make([]domain.Technician, 0, len(s.data.technicians))
	for _, t := range s.data.technicians {
		if category != "" && !servesCategory(t, category) {
			continue
		}
		if minRating > 0 && t.AverageRating < minRating {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		// Summaries omit the detail-only fields.
		t.Services = nil
		t.Portfolio = nil
		results = append(results, t)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return c.JSON(http.StatusOK, results)
}

func (s *Server) technicianByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid technician id")
	}
	for _, t := range s.data.technicians {
		if t.ID == id {
			return c.JSON(http.StatusOK, t)
		}
	}
	return errTechnicianNotFound
}

func (s *Server) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, s.data.categories)
}

func (s *Server) bookingsForUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if callerID(c) != userID {
		return echo.NewHTTPError(http.StatusForbidden, "bookings belong to another user")
	}

	results := make([]domain.Booking, 0)
	for _, b := range s.data.bookings {
		if b.UserID == userID {
			results = append(results, b)
		}
	}
	return c.JSON(http.StatusOK, results)
}

func (s *Server) bookingsForTechnician(c echo.Context) error {
	technicianID, err := strconv.ParseInt(c.Param("technicianId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid technician id")
	}
	if callerID(c) != technicianID {
		return echo.NewHTTPError(http.StatusForbidden, "job requests belong to another technician")
	}

	results := make([]domain.Booking, 0)
	for _, b := range s.data.bookings {
		if b.TechnicianID == technicianID {
			results = append(results, b)
		}
	}
	return c.JSON(http.StatusOK, results)
}

func servesCategory(t domain.Technician, category string) bool {
	for _, svc := range t.Services {
		if strings.EqualFold(svc.Category, category) {
			return true
		}
	}
	return false
}

func matchesSearch(t domain.Technician, search string) bool {
	haystack := strings.ToLower(t.FirstName + " " + t.LastName + " " + t.BusinessName + " " + t.Bio)
	return strings.Contains(haystack, search)
}
