package service

import (
	"context"
	"sync"

	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/freshnest/bookingadmin/internal/gateway"
	"github.com/freshnest/bookingadmin/internal/session"
	"github.com/sirupsen/logrus"
)

type authService struct {
	gateway gateway.AuthGateway
	store   session.Store

	// Per-session cache of the valid admin password set, refreshed once
	// per transition into the admin state.
	mu        sync.Mutex
	passwords map[string][]entity.AdminPassword
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(gw gateway.AuthGateway, store session.Store) AuthService {
	return &authService{
		gateway:   gw,
		store:     store,
		passwords: make(map[string][]entity.AdminPassword),
	}
}

// Login submits the candidate password upstream. On success the admin
// flag and display name are persisted for the browsing session and the
// password cache is refreshed. A rejected credential and a transport
// failure both come back as a plain false.
func (s *authService) Login(ctx context.Context, sid, password string) bool {
	result := s.gateway.Login(ctx, password)
	if !result.Success {
		return false
	}

	sess := entity.AdminSession{IsAdmin: true, AdminName: result.Name}
	if err := s.store.Write(ctx, sid, sess); err != nil {
		logrus.Errorf("auth: persist session %s: %v", sid, err)
		return false
	}

	logrus.WithFields(logrus.Fields{"session": sid, "admin": result.Name}).Info("Admin logged in")
	s.refreshPasswords(ctx, sid)
	return true
}

// Logout clears the session flag, display name and cached password
// list. Always succeeds.
func (s *authService) Logout(ctx context.Context, sid string) {
	if err := s.store.Clear(ctx, sid); err != nil {
		logrus.Errorf("auth: clear session %s: %v", sid, err)
	}

	s.mu.Lock()
	delete(s.passwords, sid)
	s.mu.Unlock()
}

// Session reads the persisted session state. When a prior admin session
// is detected without a live password cache (first request after a
// reload or restart), the password list is refreshed exactly once.
func (s *authService) Session(ctx context.Context, sid string) entity.AdminSession {
	sess, err := s.store.Read(ctx, sid)
	if err != nil {
		logrus.Errorf("auth: read session %s: %v", sid, err)
		return entity.AdminSession{}
	}

	if sess.IsAdmin {
		s.mu.Lock()
		_, cached := s.passwords[sid]
		s.mu.Unlock()
		if !cached {
			s.refreshPasswords(ctx, sid)
		}
	}
	return sess
}

// AddPassword rejects empty input locally, without contacting the
// upstream service.
func (s *authService) AddPassword(ctx context.Context, sid, password string) bool {
	if password == "" {
		return false
	}

	created := s.gateway.AddPassword(ctx, password)
	if created == nil {
		return false
	}

	s.mu.Lock()
	s.passwords[sid] = append(s.passwords[sid], *created)
	s.mu.Unlock()
	return true
}

// DeletePassword refuses locally when the cached list holds at most one
// entry, so the password set can never be emptied from this side. The
// upstream service is assumed to enforce the same invariant
// authoritatively.
func (s *authService) DeletePassword(ctx context.Context, sid string, id int64) bool {
	s.mu.Lock()
	remaining := len(s.passwords[sid])
	s.mu.Unlock()
	if remaining <= 1 {
		return false
	}

	if !s.gateway.DeletePassword(ctx, id) {
		return false
	}

	s.mu.Lock()
	list := s.passwords[sid]
	filtered := make([]entity.AdminPassword, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	s.passwords[sid] = filtered
	s.mu.Unlock()
	return true
}

// Passwords returns the cached password list in insertion order.
func (s *authService) Passwords(sid string) []entity.AdminPassword {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]entity.AdminPassword, len(s.passwords[sid]))
	copy(list, s.passwords[sid])
	return list
}

func (s *authService) refreshPasswords(ctx context.Context, sid string) {
	list := s.gateway.GetPasswords(ctx)

	s.mu.Lock()
	s.passwords[sid] = list
	s.mu.Unlock()
}
