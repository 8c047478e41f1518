package devstub

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/core/service"
	"github.com/techiefinder/client/internal/infrastructure/api"
	"github.com/techiefinder/client/internal/infrastructure/storage"
)

// newSDK wires the real client stack (gateway, session service, file-backed
// credential store) against the shared stub.
func newSDK(t *testing.T, credPath string) (*service.SessionService, *api.Client) {
	t.Helper()
	srv := stubServer(t)
	store := storage.NewFileStore(credPath)
	client := api.NewClient(srv.URL+"/api", 2*time.Second, zerolog.Nop())
	session := service.NewSessionService(store, client, zerolog.Nop())
	client.SetCredentialSource(func() string { return session.Current().Credential })
	client.SetUnauthorizedHook(session.Invalidate)
	return session, client
}

func TestEndToEnd_LoginRestartDashboardLogout(t *testing.T) {
	ctx := context.Background()
	credPath := filepath.Join(t.TempDir(), "credential")

	session, client := newSDK(t, credPath)
	if err := session.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if session.Current().Authenticated() {
		t.Fatalf("fresh install must start unauthenticated")
	}

	if err := session.Login(ctx, "ana@example.com", seedPassword); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	tree, err := service.Route(session.Current())
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if !tree.Contains(service.ScreenUserDashboard) {
		t.Fatalf("expected the USER tab set, got %+v", tree)
	}

	bookings, err := client.BookingsForUser(ctx, session.Current().Identity.ID)
	if err != nil {
		t.Fatalf("dashboard load failed: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}

	// Simulated process restart: a fresh service over the same store.
	restarted, _ := newSDK(t, credPath)
	if err := restarted.Restore(ctx); err != nil {
		t.Fatalf("restore after restart failed: %v", err)
	}
	current := restarted.Current()
	if !current.Authenticated() || current.Identity.Email != "ana@example.com" {
		t.Fatalf("session must survive restarts, got %+v", current)
	}

	if err := restarted.Logout(ctx); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	afterLogout, _ := newSDK(t, credPath)
	if err := afterLogout.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if afterLogout.Current().Authenticated() {
		t.Fatalf("logout must clear the persisted credential")
	}
}

func TestEndToEnd_RejectedCredentialInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	credPath := filepath.Join(t.TempDir(), "credential")

	// A token signed with the wrong secret decodes fine client-side but the
	// stub rejects it with 401.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ana@example.com",
		"uid":  float64(1),
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	if err := storage.NewFileStore(credPath).Save(ctx, forged); err != nil {
		t.Fatalf("seeding credential: %v", err)
	}

	session, client := newSDK(t, credPath)
	if err := session.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !session.Current().Authenticated() {
		t.Fatalf("restore trusts the stored token provisionally")
	}

	_, err = client.BookingsForUser(ctx, 1)
	apiErr, ok := api.IsAPIError(err)
	if !ok || !apiErr.Unauthorized() {
		t.Fatalf("expected a 401, got %v", err)
	}

	if session.Current().Authenticated() {
		t.Fatalf("a 401 must invalidate the session")
	}
	stored, err := storage.NewFileStore(credPath).Load(ctx)
	if err != nil || stored != "" {
		t.Fatalf("the rejected credential must be cleared from storage, got %q, %v", stored, err)
	}
}

func TestEndToEnd_RegisterLogsIn(t *testing.T) {
	ctx := context.Background()
	session, _ := newSDK(t, filepath.Join(t.TempDir(), "credential"))
	if err := session.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	err := session.Register(ctx, domain.RegisterInput{
		FirstName:   "Leo",
		LastName:    "Mora",
		Email:       "leo@example.com",
		PhoneNumber: "5599988877",
		Password:    "secret1",
		Role:        domain.RoleTechnician,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	tree, err := service.Route(session.Current())
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if !tree.Contains(service.ScreenTechnicianDashboard) {
		t.Fatalf("a technician registration must route to the technician tabs: %+v", tree)
	}
}

func TestEndToEnd_BadLoginSurfacesBackendMessage(t *testing.T) {
	ctx := context.Background()
	session, _ := newSDK(t, filepath.Join(t.TempDir(), "credential"))
	if err := session.Restore(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	err := session.Login(ctx, "ana@example.com", "wrong-password")
	apiErr, ok := api.IsAPIError(err)
	if !ok {
		t.Fatalf("expected an APIError, got %v", err)
	}
	if apiErr.Message != "Invalid email or password" {
		t.Fatalf("the backend message must surface verbatim, got %q", apiErr.Message)
	}
	if session.Current().Authenticated() {
		t.Fatalf("a failed login must leave the session unauthenticated")
	}
	if errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("an HTTP-level rejection is not a network error")
	}
}
