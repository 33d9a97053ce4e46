// Package auth owns the process-wide session and the secondary administrator
// set. There is no external identity provider: provider sign-ins synthesize a
// session after an artificial delay, and admin sign-ins check credentials
// held locally. The admin flag on a session is never taken from a caller; it
// is always re-derived from the email rule.
package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/openletters/community/internal/domain"
	"github.com/openletters/community/internal/localstore"
)

const (
	sessionKey         = "session"
	secondaryAdminsKey = "secondary-admins"
)

// Provider is a social sign-in stand-in.
type Provider string

const (
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

// Config carries the primary admin credential pair and the artificial latency
// applied to sign-in operations.
type Config struct {
	PrimaryAdminEmail    string
	PrimaryAdminPassword string
	SignInDelay          time.Duration
}

// Service is the session store. All methods are safe for concurrent use,
// though the intended deployment has a single logical caller.
type Service struct {
	mu      sync.Mutex
	cfg     Config
	store   *localstore.Store
	logger  *zap.Logger
	session *domain.Session
	admins  []domain.AdminCredential
}

// NewService restores the session and the secondary admin set from the store.
func NewService(cfg Config, store *localstore.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{cfg: cfg, store: store, logger: logger}
	var restored domain.Session
	if store.Get(sessionKey, &restored) {
		s.session = &restored
		logger.Info("restored session", zap.String("email", restored.Email))
	}
	store.Get(secondaryAdminsKey, &s.admins)
	return s
}

// Current returns a copy of the active session, or nil when signed out.
func (s *Service) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// SignInWithProvider synthesizes a provider-tagged session. It always
// succeeds and replaces any existing session.
func (s *Service) SignInWithProvider(ctx context.Context, p Provider) *domain.Session {
	s.wait(ctx)

	var email, name, photo, description string
	switch p {
	case ProviderFacebook:
		email = "user.fb@example.com"
		name = "Facebook User"
		photo = "https://placehold.co/100x100.png?text=FU"
		description = "Word enthusiast."
	default:
		email = "user.g@example.com"
		name = "Google User"
		photo = "https://placehold.co/100x100.png?text=GU"
		description = "Lover of reading and writing."
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setSession(domain.Session{
		UID:         fmt.Sprintf("%s-%s", p, uuid.NewString()),
		Email:       email,
		DisplayName: name,
		PhotoURL:    photo,
		Description: description,
	})
}

// SignInAsPrimaryAdmin succeeds only on an exact match of the configured
// credential pair. On failure the existing session is untouched.
func (s *Service) SignInAsPrimaryAdmin(ctx context.Context, email, password string) bool {
	s.wait(ctx)

	if email != s.cfg.PrimaryAdminEmail || password != s.cfg.PrimaryAdminPassword {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSession(domain.Session{
		UID:         fmt.Sprintf("primary-admin-%s", uuid.NewString()),
		Email:       email,
		DisplayName: "Primary Administrator",
		PhotoURL:    "https://placehold.co/100x100.png?text=PA",
		Description: "Managing the platform.",
	})
	return true
}

// SignInAsSecondaryAdmin looks the email up in the secondary set and verifies
// the password against the stored hash.
func (s *Service) SignInAsSecondaryAdmin(ctx context.Context, email, password string) bool {
	s.wait(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.findAdmin(email)
	if !ok {
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return false
	}

	local, _, _ := strings.Cut(email, "@")
	s.setSession(domain.Session{
		UID:         fmt.Sprintf("secondary-admin-%s", uuid.NewString()),
		Email:       email,
		DisplayName: "Admin: " + local,
		PhotoURL:    "https://placehold.co/100x100.png?text=SA",
		Description: "Secondary platform administrator.",
	})
	return true
}

// AddSecondaryAdmin registers a new secondary admin credential. The primary
// admin email and already-registered emails are rejected.
func (s *Service) AddSecondaryAdmin(email, password string) bool {
	if email == "" || password == "" || email == s.cfg.PrimaryAdminEmail {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.findAdmin(email); exists {
		return false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash admin password", zap.Error(err))
		return false
	}
	s.admins = append(s.admins, domain.AdminCredential{Email: email, PasswordHash: string(hash)})
	s.store.Set(secondaryAdminsKey, s.admins)
	return true
}

// RemoveSecondaryAdmin drops the matching credential if present. Removing the
// currently signed-in secondary admin also signs them out; a primary admin
// session is never signed out by this path.
func (s *Service) RemoveSecondaryAdmin(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.admins[:0]
	for _, a := range s.admins {
		if a.Email != email {
			kept = append(kept, a)
		}
	}
	s.admins = kept
	s.store.Set(secondaryAdminsKey, s.admins)

	if s.session != nil && s.session.Email == email && email != s.cfg.PrimaryAdminEmail {
		s.clearSession()
	}
}

// ListSecondaryAdmins returns the registered emails. Hashes never leave the
// service.
func (s *Service) ListSecondaryAdmins() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	emails := make([]string, 0, len(s.admins))
	for _, a := range s.admins {
		emails = append(emails, a.Email)
	}
	return emails
}

// UpdateProfile merges the supplied fields into the active session and
// re-derives the admin flag. Without an active session it is a no-op.
func (s *Service) UpdateProfile(patch domain.ProfilePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return false
	}
	updated := *s.session
	if patch.DisplayName != nil {
		updated.DisplayName = *patch.DisplayName
	}
	if patch.PhotoURL != nil {
		updated.PhotoURL = *patch.PhotoURL
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	s.setSession(updated)
	return true
}

// SignOut clears the session and its durable copy.
func (s *Service) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSession()
}

// setSession re-derives the admin flag and persists. Callers hold s.mu.
func (s *Service) setSession(sess domain.Session) *domain.Session {
	sess.IsAdmin = s.isAdminEmail(sess.Email)
	s.session = &sess
	s.store.Set(sessionKey, sess)
	copied := sess
	return &copied
}

func (s *Service) clearSession() {
	s.session = nil
	s.store.Delete(sessionKey)
}

// isAdminEmail is the single authorization rule: primary admin email or a
// member of the secondary set.
func (s *Service) isAdminEmail(email string) bool {
	if email == s.cfg.PrimaryAdminEmail {
		return true
	}
	_, ok := s.findAdmin(email)
	return ok
}

func (s *Service) findAdmin(email string) (domain.AdminCredential, bool) {
	for _, a := range s.admins {
		if a.Email == email {
			return a, true
		}
	}
	return domain.AdminCredential{}, false
}

// wait models the fixed latency the original inserted before resolving
// sign-in operations. Cancelling the context only shortens the wait.
func (s *Service) wait(ctx context.Context) {
	if s.cfg.SignInDelay <= 0 {
		return
	}
	t := time.NewTimer(s.cfg.SignInDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
