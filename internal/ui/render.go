// Package ui renders the client's screens as plain text. Renderers never
// fetch anything themselves; they draw whatever data the caller already
// loaded, and every list has a defined empty state instead of a crash or an
// endless spinner.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/core/service"
)

// RenderScreenTree prints the navigation the current session allows.
func RenderScreenTree(w io.Writer, tree service.ScreenTree, identity *domain.Identity) {
	if identity != nil {
		fmt.Fprintf(w, "Signed in as %s (%s)\n", identity.FullName(), identity.Role)
	} else {
		fmt.Fprintln(w, "Not signed in")
	}
	fmt.Fprintf(w, "Entry screen: %s\n", tree.Entry)
	if len(tree.Tabs) > 0 {
		fmt.Fprint(w, "Tabs:")
		for _, tab := range tree.Tabs {
			fmt.Fprintf(w, " %s", tab)
		}
		fmt.Fprintln(w)
	}
	if len(tree.Stack) > 0 {
		fmt.Fprint(w, "Reachable:")
		for _, s := range tree.Stack {
			fmt.Fprintf(w, " %s", s)
		}
		fmt.Fprintln(w)
	}
}

// RenderTechnicianList draws search results or the home screen's featured
// technicians.
func RenderTechnicianList(w io.Writer, technicians []domain.Technician) {
	if len(technicians) == 0 {
		fmt.Fprintln(w, "No technicians found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tEXPERIENCE\tVERIFIED\tBIO")
	for _, t := range technicians {
		verified := ""
		if t.IsVerified {
			verified = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d yrs\t%s\t%s\n",
			t.ID, t.DisplayName(), t.DisplayRating(), t.YearsOfExperience, verified, t.DisplayBio())
	}
	tw.Flush()
}

// RenderTechnicianDetail draws the profile screen.
func RenderTechnicianDetail(w io.Writer, t *domain.Technician) {
	fmt.Fprintf(w, "%s", t.DisplayName())
	if t.IsVerified {
		fmt.Fprint(w, " ✓")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.DisplayBio())
	fmt.Fprintf(w, "Rating %s (%d ratings), %d jobs completed, %d years experience\n",
		t.DisplayRating(), t.TotalRatings, t.CompletedJobs, t.YearsOfExperience)

	if len(t.Services) == 0 {
		fmt.Fprintln(w, "No services listed.")
	} else {
		fmt.Fprintln(w, "Services:")
		for _, s := range t.Services {
			if s.BasePrice > 0 {
				fmt.Fprintf(w, "  - %s (from $%.2f)\n", s.Name, s.BasePrice)
			} else {
				fmt.Fprintf(w, "  - %s\n", s.Name)
			}
		}
	}

	if len(t.Portfolio) > 0 {
		fmt.Fprintln(w, "Portfolio:")
		for _, p := range t.Portfolio {
			fmt.Fprintf(w, "  - %s\n", p.Title)
		}
	}
}

// RenderBookings draws a dashboard's booking list. forTechnician switches
// the wording to the job-request view.
func RenderBookings(w io.Writer, bookings []domain.Booking, forTechnician bool) {
	if len(bookings) == 0 {
		if forTechnician {
			fmt.Fprintln(w, "No job requests yet.")
		} else {
			fmt.Fprintln(w, "No bookings yet.")
		}
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOKING\tSTATUS\tSCHEDULED\tSERVICE\tADDRESS")
	for _, b := range bookings {
		scheduled := ""
		if !b.ScheduledDateTime.IsZero() {
			scheduled = b.ScheduledDateTime.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.BookingNumber, b.Status, scheduled, b.ServiceDescription, b.ServiceAddress)
	}
	tw.Flush()
}

// RenderCategories draws the public category catalog.
func RenderCategories(w io.Writer, categories []domain.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories available.")
		return
	}
	for _, c := range categories {
		if c.Description != "" {
			fmt.Fprintf(w, "%s (%s) — %s\n", c.Name, c.Slug, c.Description)
		} else {
			fmt.Fprintf(w, "%s (%s)\n", c.Name, c.Slug)
		}
	}
}
