package store

import (
	"go.uber.org/zap"

	"github.com/debghosh/mysticresin/internal/models"
)

// The admin session is a UX gate, not a security boundary: the access code
// is stored in plaintext in the site configuration and compared with plain
// string equality. Anyone with access to the database can read it. Real
// access control would need a trusted server-side identity layer.

// Login compares the supplied code against the configured admin access
// code. On a match, a session valid for SessionDuration is created and
// persisted; on a mismatch, state is left untouched and false is returned.
// An empty configured code never authenticates: an imported config can
// legally omit the field, and that must lock the gate, not open it.
func (s *Store) Login(code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.AdminAccessCode == "" || code != s.config.AdminAccessCode {
		return false, nil
	}

	s.admin = models.AdminState{
		IsAuthenticated: true,
		SessionExpiry:   s.now().UnixMilli() + SessionDuration.Milliseconds(),
	}
	if err := s.persist(keyAdminState, s.admin); err != nil {
		return true, err
	}
	return true, nil
}

// Logout unconditionally clears the session.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = models.AdminState{}
	return s.persist(keyAdminState, s.admin)
}

// IsAuthenticated reports whether a valid session exists. Expiry is lazy:
// there is no background timer, so a stale session is detected here and
// forced back to logged-out as a side effect.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.admin.IsAuthenticated {
		return false
	}
	if !s.sessionValid(s.admin) {
		s.admin = models.AdminState{}
		if err := s.persist(keyAdminState, s.admin); err != nil {
			s.log.Warn("failed to persist expired session reset", zap.Error(err))
		}
		return false
	}
	return true
}

// AdminState returns the current session record.
func (s *Store) AdminState() models.AdminState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

func (s *Store) sessionValid(a models.AdminState) bool {
	return a.IsAuthenticated && s.now().UnixMilli() < a.SessionExpiry
}
