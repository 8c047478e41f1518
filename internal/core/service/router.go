package service

import (
	"github.com/techiefinder/client/internal/core/domain"
)

// Screen identifies a navigable screen.
type Screen string

const (
	ScreenSplash              Screen = "splash"
	ScreenLogin               Screen = "login"
	ScreenRegister            Screen = "register"
	ScreenHome                Screen = "home"
	ScreenSearch              Screen = "search"
	ScreenJobs                Screen = "jobs"
	ScreenUserDashboard       Screen = "user_dashboard"
	ScreenTechnicianDashboard Screen = "technician_dashboard"
	ScreenTechnicianProfile   Screen = "technician_profile"
)

// ScreenTree is the set of screens reachable in a given session state.
// Entry is where navigation starts, Tabs is the bottom tab set (empty while
// unauthenticated), and Stack lists the screens that can be pushed on top.
type ScreenTree struct {
	Entry Screen
	Tabs  []Screen
	Stack []Screen
}

// Contains reports whether screen is reachable anywhere in the tree.
func (t ScreenTree) Contains(screen Screen) bool {
	if t.Entry == screen {
		return true
	}
	for _, s := range t.Tabs {
		if s == screen {
			return true
		}
	}
	for _, s := range t.Stack {
		if s == screen {
			return true
		}
	}
	return false
}

// Route maps a session snapshot to its screen tree. It is a pure function:
// the same snapshot always yields the same tree, and it is re-evaluated on
// every session change so navigation can never drift from the session.
//
// While the session is restoring, only the splash screen exists; neither
// Login nor a tab set may flash before the restore outcome is known. An
// authenticated session with a role the client does not recognize gets the
// unauthenticated tree plus domain.ErrUnknownRole — rendering an undefined
// tab set is never an option.
func Route(session domain.Session) (ScreenTree, error) {
	if session.Loading {
		return ScreenTree{Entry: ScreenSplash}, nil
	}

	unauthenticated := ScreenTree{
		Entry: ScreenLogin,
		Stack: []Screen{ScreenLogin, ScreenRegister},
	}

	if !session.Authenticated() {
		return unauthenticated, nil
	}

	switch session.Identity.Role {
	case domain.RoleUser:
		return ScreenTree{
			Entry: ScreenHome,
			Tabs:  []Screen{ScreenHome, ScreenSearch, ScreenUserDashboard},
			Stack: []Screen{ScreenTechnicianProfile},
		}, nil
	case domain.RoleTechnician:
		return ScreenTree{
			Entry: ScreenHome,
			Tabs:  []Screen{ScreenHome, ScreenJobs, ScreenTechnicianDashboard},
			Stack: []Screen{ScreenTechnicianProfile},
		}, nil
	default:
		return unauthenticated, domain.ErrUnknownRole
	}
}
