package domain

// SessionPhase names the three logical session states.
type SessionPhase string

const (
	PhaseRestoring       SessionPhase = "restoring"
	PhaseUnauthenticated SessionPhase = "unauthenticated"
	PhaseAuthenticated   SessionPhase = "authenticated"
)

// Session is an immutable snapshot of authentication state. Identity and
// Credential are always set and cleared together; holding one without the
// other is a bug in the session service, never a state callers should see.
type Session struct {
	Loading    bool
	Identity   *Identity
	Credential string
}

// Authenticated reports whether the snapshot carries a live identity.
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Credential != ""
}

// Phase derives the logical state from the snapshot fields.
func (s Session) Phase() SessionPhase {
	switch {
	case s.Loading:
		return PhaseRestoring
	case s.Authenticated():
		return PhaseAuthenticated
	default:
		return PhaseUnauthenticated
	}
}
