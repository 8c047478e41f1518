package ui

import (
	"strings"
	"testing"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/core/service"
)

func TestRenderTechnicianList_EmptyState(t *testing.T) {
	var buf strings.Builder
	RenderTechnicianList(&buf, nil)
	if !strings.Contains(buf.String(), "No technicians found.") {
		t.Fatalf("expected the empty state, got %q", buf.String())
	}
}

func TestRenderTechnicianList_PlaceholdersForAbsentFields(t *testing.T) {
	var buf strings.Builder
	RenderTechnicianList(&buf, []domain.Technician{
		{ID: 4, FirstName: "Diego", LastName: "Franco"},
	})
	out := buf.String()
	if !strings.Contains(out, "Diego Franco") {
		t.Fatalf("missing name: %q", out)
	}
	if !strings.Contains(out, "5.0") {
		t.Fatalf("absent rating must render the default placeholder: %q", out)
	}
	if !strings.Contains(out, "Professional technician") {
		t.Fatalf("absent bio must render the default placeholder: %q", out)
	}
}

func TestRenderBookings_EmptyStates(t *testing.T) {
	var buf strings.Builder
	RenderBookings(&buf, nil, false)
	if !strings.Contains(buf.String(), "No bookings yet.") {
		t.Fatalf("expected the customer empty state, got %q", buf.String())
	}

	buf.Reset()
	RenderBookings(&buf, nil, true)
	if !strings.Contains(buf.String(), "No job requests yet.") {
		t.Fatalf("expected the technician empty state, got %q", buf.String())
	}
}

func TestRenderBookings_ShowsStatus(t *testing.T) {
	var buf strings.Builder
	RenderBookings(&buf, []domain.Booking{
		{BookingNumber: "BK-2024-0010", Status: domain.BookingPending, ServiceDescription: "Kitchen sink leak"},
	}, false)
	out := buf.String()
	if !strings.Contains(out, "BK-2024-0010") || !strings.Contains(out, "PENDING") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderScreenTree(t *testing.T) {
	tree, err := service.Route(domain.Session{
		Identity:   &domain.Identity{FirstName: "Ana", LastName: "Reyes", Role: domain.RoleUser},
		Credential: "tok",
	})
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}

	var buf strings.Builder
	RenderScreenTree(&buf, tree, &domain.Identity{FirstName: "Ana", LastName: "Reyes", Role: domain.RoleUser})
	out := buf.String()
	if !strings.Contains(out, "Signed in as Ana Reyes (USER)") {
		t.Fatalf("missing identity line: %q", out)
	}
	if !strings.Contains(out, "user_dashboard") {
		t.Fatalf("missing dashboard tab: %q", out)
	}
}

func TestRenderCategories_EmptyState(t *testing.T) {
	var buf strings.Builder
	RenderCategories(&buf, nil)
	if !strings.Contains(buf.String(), "No categories available.") {
		t.Fatalf("expected the empty state, got %q", buf.String())
	}
}
