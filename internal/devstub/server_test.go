package devstub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/pkg/config"
)

var (
	stubOnce sync.Once
	stubSrv  *httptest.Server
)

// stubServer returns one shared stub for the whole package; the prometheus
// middleware registers collectors globally, so New must run exactly once.
func stubServer(t *testing.T) *httptest.Server {
	t.Helper()
	stubOnce.Do(func() {
		s := New(config.StubConfig{
			Port:      "0",
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		}, zerolog.Nop())
		stubSrv = httptest.NewServer(s.Handler())
	})
	return stubSrv
}

func doLogin(t *testing.T, email, password string) (*http.Response, domain.AuthResult) {
	t.Helper()
	srv := stubServer(t)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json",
		strings.NewReader(`{"email":"`+email+`","password":"`+password+`"}`))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	var result domain.AuthResult
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func getJSON(t *testing.T, path, token string, out any) *http.Response {
	t.Helper()
	srv := stubServer(t)
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func TestStub_LoginSuccess(t *testing.T) {
	resp, result := doLogin(t, "ana@example.com", seedPassword)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected a token")
	}
	if result.User.Role != domain.RoleUser || result.User.ID != 1 {
		t.Fatalf("unexpected user: %+v", result.User)
	}
}

func TestStub_LoginWrongPassword(t *testing.T) {
	resp, _ := doLogin(t, "ana@example.com", "wrong-password")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestStub_LoginUnknownEmailLooksLikeBadPassword(t *testing.T) {
	resp, _ := doLogin(t, "ghost@example.com", seedPassword)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestStub_RegisterAndDuplicate(t *testing.T) {
	srv := stubServer(t)
	body := `{"firstName":"Eva","lastName":"Solis","email":"eva@example.com","phoneNumber":"5511122233","password":"secret1","role":"TECHNICIAN"}`

	resp, err := http.Post(srv.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	var result domain.AuthResult
	_ = json.NewDecoder(resp.Body).Decode(&result)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if result.AccessToken == "" || result.User.Role != domain.RoleTechnician {
		t.Fatalf("unexpected result: %+v", result)
	}

	resp2, err := http.Post(srv.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate email must yield 409, got %d", resp2.StatusCode)
	}
}

func TestStub_RegisterValidation(t *testing.T) {
	srv := stubServer(t)
	body := `{"firstName":"Eva","lastName":"Solis","email":"eva2@example.com","phoneNumber":"5511122233","password":"123","role":"TECHNICIAN"}`
	resp, err := http.Post(srv.URL+"/api/auth/register", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("short password must yield 400, got %d", resp.StatusCode)
	}
}

func TestStub_AvailableTechnicians(t *testing.T) {
	var all []domain.Technician
	if resp := getJSON(t, "/api/technicians/available", "", &all); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 technicians, got %d", len(all))
	}
	for _, tech := range all {
		if len(tech.Services) != 0 || len(tech.Portfolio) != 0 {
			t.Fatalf("summaries must omit detail fields: %+v", tech)
		}
	}

	var limited []domain.Technician
	getJSON(t, "/api/technicians/available?limit=1", "", &limited)
	if len(limited) != 1 {
		t.Fatalf("expected 1 technician with limit=1, got %d", len(limited))
	}

	var electricians []domain.Technician
	getJSON(t, "/api/technicians/available?category=electrical", "", &electricians)
	if len(electricians) != 1 || electricians[0].FirstName != "Marta" {
		t.Fatalf("unexpected category filter result: %+v", electricians)
	}

	var rated []domain.Technician
	getJSON(t, "/api/technicians/available?minRating=4.7", "", &rated)
	if len(rated) != 1 || rated[0].ID != 2 {
		t.Fatalf("unexpected rating filter result: %+v", rated)
	}

	var searched []domain.Technician
	getJSON(t, "/api/technicians/available?search=plumbing", "", &searched)
	if len(searched) != 1 || searched[0].ID != 2 {
		t.Fatalf("unexpected search result: %+v", searched)
	}
}

func TestStub_TechnicianDetail(t *testing.T) {
	var tech domain.Technician
	if resp := getJSON(t, "/api/technicians/2", "", &tech); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(tech.Services) == 0 {
		t.Fatalf("detail must include services: %+v", tech)
	}

	if resp := getJSON(t, "/api/technicians/999", "", nil); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestStub_Categories(t *testing.T) {
	var categories []domain.Category
	if resp := getJSON(t, "/api/public/categories", "", &categories); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(categories))
	}
}

func TestStub_BookingsRequireAuth(t *testing.T) {
	if resp := getJSON(t, "/api/bookings/user/1", "", nil); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}
	if resp := getJSON(t, "/api/bookings/user/1", "garbage-token", nil); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", resp.StatusCode)
	}
}

func TestStub_BookingsForUser(t *testing.T) {
	_, login := doLogin(t, "ana@example.com", seedPassword)

	var bookings []domain.Booking
	if resp := getJSON(t, "/api/bookings/user/1", login.AccessToken, &bookings); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}

	if resp := getJSON(t, "/api/bookings/user/2", login.AccessToken, nil); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("another user's bookings must yield 403, got %d", resp.StatusCode)
	}
}

func TestStub_BookingsForTechnician(t *testing.T) {
	_, login := doLogin(t, "tomas@example.com", seedPassword)

	var jobs []domain.Booking
	if resp := getJSON(t, "/api/bookings/technician/2", login.AccessToken, &jobs); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(jobs) != 1 || jobs[0].Status != domain.BookingPending {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}
