package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/techiefinder/client/internal/core/domain"
	"github.com/techiefinder/client/internal/core/ports"
	"github.com/techiefinder/client/internal/metrics"
)

// SessionService owns the Identity/Credential pair. Credential persistence
// and the in-memory identity are always updated together: a failed persist
// aborts the whole transition.
//
// Mutating operations (Restore, Login, Register, Logout) are mutually
// exclusive; a second call while one is outstanding is rejected with
// domain.ErrOperationInFlight rather than queued, which is also what keeps a
// submit button effectively disabled while its request is in flight.
var _ ports.SessionService = (*SessionService)(nil)

type SessionService struct {
	store ports.CredentialStore
	auth  ports.AuthGateway
	log   zerolog.Logger

	opMu sync.Mutex // held for the full duration of a mutating op

	stateMu sync.Mutex // guards session + subscribers
	session domain.Session
	subs    map[int]func(domain.Session)
	nextSub int
}

func NewSessionService(store ports.CredentialStore, auth ports.AuthGateway, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:   store,
		auth:    auth,
		log:     log,
		session: domain.Session{Loading: true},
		subs:    make(map[int]func(domain.Session)),
	}
}

// Current returns an immutable snapshot of the session.
func (s *SessionService) Current() domain.Session {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.session
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription; calling it more
// than once is harmless.
func (s *SessionService) Subscribe(fn func(domain.Session)) func() {
	s.stateMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.stateMu.Unlock()
	return func() {
		s.stateMu.Lock()
		delete(s.subs, id)
		s.stateMu.Unlock()
	}
}

// Restore reads the persisted credential once at process start and hydrates
// the identity from its claims. It always leaves the session with
// Loading=false, whatever the storage read or the token decode did.
func (s *SessionService) Restore(ctx context.Context) error {
	if !s.opMu.TryLock() {
		return domain.ErrOperationInFlight
	}
	defer s.opMu.Unlock()

	credential, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("credential restore failed, starting unauthenticated")
		s.setState(domain.Session{})
		return nil
	}
	if credential == "" {
		s.setState(domain.Session{})
		return nil
	}

	identity, ok := identityFromToken(credential)
	if !ok {
		s.log.Info().Msg("stored credential expired or unreadable, clearing")
		if err := s.store.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear stale credential")
		}
		s.setState(domain.Session{})
		return nil
	}

	metrics.SessionTransitionsTotal.WithLabelValues("restored").Inc()
	s.setState(domain.Session{Identity: identity, Credential: credential})
	return nil
}

// Login authenticates against the backend and, on success, persists the
// credential and installs the identity as one step. On any failure the
// session is left exactly as it was.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if !s.opMu.TryLock() {
		return domain.ErrOperationInFlight
	}
	defer s.opMu.Unlock()

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.install(ctx, result, "login")
}

// Register creates an account and logs it in; registration success implies
// an authenticated session with the same atomicity contract as Login.
func (s *SessionService) Register(ctx context.Context, input domain.RegisterInput) error {
	if !s.opMu.TryLock() {
		return domain.ErrOperationInFlight
	}
	defer s.opMu.Unlock()

	result, err := s.auth.Register(ctx, input)
	if err != nil {
		return err
	}
	return s.install(ctx, result, "register")
}

// Logout clears the persisted credential and the in-memory identity. It
// always succeeds locally; a storage failure is logged, not surfaced.
func (s *SessionService) Logout(ctx context.Context) error {
	if !s.opMu.TryLock() {
		return domain.ErrOperationInFlight
	}
	defer s.opMu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted credential on logout")
	}
	metrics.SessionTransitionsTotal.WithLabelValues("logout").Inc()
	s.setState(domain.Session{})
	return nil
}

// Invalidate reacts to a rejected credential (a 401 on any call): it clears
// storage and identity together. Idempotent, and deliberately not gated on
// the mutation lock so the gateway's unauthorized hook can fire while
// another operation is in flight.
func (s *SessionService) Invalidate() {
	s.stateMu.Lock()
	wasAuthenticated := s.session.Authenticated()
	s.stateMu.Unlock()
	if !wasAuthenticated {
		return
	}
	if err := s.store.Clear(context.Background()); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted credential on invalidation")
	}
	metrics.SessionTransitionsTotal.WithLabelValues("invalidated").Inc()
	s.log.Info().Msg("credential rejected by backend, session invalidated")
	s.setState(domain.Session{})
}

// install persists the credential first, then swaps in the identity. Called
// only while the mutation lock is held.
func (s *SessionService) install(ctx context.Context, result *domain.AuthResult, op string) error {
	if err := ctx.Err(); err != nil {
		// The caller went away mid-flight; leave the session untouched.
		return err
	}
	if !result.User.Role.Known() {
		return domain.ErrUnknownRole
	}
	if err := s.store.Save(ctx, result.AccessToken); err != nil {
		return err
	}
	identity := result.User
	metrics.SessionTransitionsTotal.WithLabelValues(op).Inc()
	s.setState(domain.Session{Identity: &identity, Credential: result.AccessToken})
	return nil
}

func (s *SessionService) setState(next domain.Session) {
	s.stateMu.Lock()
	s.session = next
	subs := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.stateMu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
}

// identityFromToken decodes the identity claims the backend embeds in its
// access tokens. The signature is not verified here; the client holds no
// secret and the backend re-checks every request anyway. An expired or
// structurally unusable token yields ok=false.
func identityFromToken(credential string) (*domain.Identity, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return nil, false
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return nil, false
		}
	}

	role, _ := claims["role"].(string)
	if !domain.Role(role).Known() {
		return nil, false
	}

	identity := &domain.Identity{Role: domain.Role(role)}
	if sub, err := claims.GetSubject(); err == nil {
		identity.Email = sub
	}
	if uid, ok := claims["uid"].(float64); ok {
		identity.ID = int64(uid)
	}
	if v, ok := claims["firstName"].(string); ok {
		identity.FirstName = v
	}
	if v, ok := claims["lastName"].(string); ok {
		identity.LastName = v
	}
	return identity, true
}
