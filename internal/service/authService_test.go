package service

import (
	"context"
	"testing"

	"github.com/freshnest/bookingadmin/internal/entity"
	"github.com/freshnest/bookingadmin/internal/gateway"
	"github.com/freshnest/bookingadmin/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthGateway struct {
	loginResult  gateway.LoginResult
	passwords    []entity.AdminPassword
	addResult    *entity.AdminPassword
	deleteResult bool

	loginCalls  int
	getCalls    int
	addCalls    int
	deleteCalls int
}

func (f *fakeAuthGateway) Login(_ context.Context, _ string) gateway.LoginResult {
	f.loginCalls++
	return f.loginResult
}

func (f *fakeAuthGateway) GetPasswords(_ context.Context) []entity.AdminPassword {
	f.getCalls++
	return f.passwords
}

func (f *fakeAuthGateway) AddPassword(_ context.Context, _ string) *entity.AdminPassword {
	f.addCalls++
	return f.addResult
}

func (f *fakeAuthGateway) DeletePassword(_ context.Context, _ int64) bool {
	f.deleteCalls++
	return f.deleteResult
}

const testSID = "test-session"

func TestLoginSuccessPersistsSession(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: gateway.LoginResult{Success: true, Name: "Alice"},
		passwords:   []entity.AdminPassword{{ID: 1, Password: "secret"}},
	}
	store := session.NewMemoryStore()
	auth := NewAuthService(gw, store)

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "secret"))

	sess := auth.Session(ctx, testSID)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "Alice", sess.AdminName)

	// A reload builds a fresh auth context over the same store; the
	// session must survive the round-trip.
	reloaded := NewAuthService(gw, store)
	sess = reloaded.Session(ctx, testSID)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "Alice", sess.AdminName)
	assert.Equal(t, []entity.AdminPassword{{ID: 1, Password: "secret"}}, reloaded.Passwords(testSID))
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	gw := &fakeAuthGateway{loginResult: gateway.LoginResult{Success: false}}
	auth := NewAuthService(gw, session.NewMemoryStore())

	ctx := context.Background()
	assert.False(t, auth.Login(ctx, testSID, "wrong"))

	sess := auth.Session(ctx, testSID)
	assert.False(t, sess.IsAdmin)
	assert.Empty(t, sess.AdminName)
	assert.Empty(t, auth.Passwords(testSID))
	assert.Equal(t, 0, gw.getCalls)
}

func TestLogoutClearsEverything(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: gateway.LoginResult{Success: true, Name: "Alice"},
		passwords:   []entity.AdminPassword{{ID: 1}, {ID: 2}},
	}
	store := session.NewMemoryStore()
	auth := NewAuthService(gw, store)

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "secret"))
	require.NotEmpty(t, auth.Passwords(testSID))

	auth.Logout(ctx, testSID)

	sess := auth.Session(ctx, testSID)
	assert.False(t, sess.IsAdmin)
	assert.Empty(t, sess.AdminName)
	assert.Empty(t, auth.Passwords(testSID))
}

func TestPasswordsRefreshOncePerTransition(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: gateway.LoginResult{Success: true},
		passwords:   []entity.AdminPassword{{ID: 1}},
	}
	auth := NewAuthService(gw, session.NewMemoryStore())

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "secret"))
	assert.Equal(t, 1, gw.getCalls)

	// Subsequent session reads must not refetch.
	auth.Session(ctx, testSID)
	auth.Session(ctx, testSID)
	assert.Equal(t, 1, gw.getCalls)
}

func TestAddPasswordEmptyInput(t *testing.T) {
	gw := &fakeAuthGateway{}
	auth := NewAuthService(gw, session.NewMemoryStore())

	assert.False(t, auth.AddPassword(context.Background(), testSID, ""))
	assert.Equal(t, 0, gw.addCalls, "empty input must never reach the network")
}

func TestAddPasswordAppendsInOrder(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: gateway.LoginResult{Success: true},
		passwords:   []entity.AdminPassword{{ID: 1, Password: "first"}},
		addResult:   &entity.AdminPassword{ID: 2, Password: "second"},
	}
	auth := NewAuthService(gw, session.NewMemoryStore())

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "first"))
	require.True(t, auth.AddPassword(ctx, testSID, "second"))

	list := auth.Passwords(testSID)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}

func TestAddPasswordUpstreamFailure(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: gateway.LoginResult{Success: true},
		passwords:   []entity.AdminPassword{{ID: 1}},
		addResult:   nil,
	}
	auth := NewAuthService(gw, session.NewMemoryStore())

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "first"))

	assert.False(t, auth.AddPassword(ctx, testSID, "second"))
	assert.Len(t, auth.Passwords(testSID), 1)
}

func TestDeletePasswordLastEntryGuard(t *testing.T) {
	tests := []struct {
		name     string
		targetID int64
	}{
		{name: "delete the only entry by its own id", targetID: 7},
		{name: "delete the only entry by a foreign id", targetID: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeAuthGateway{
				loginResult:  gateway.LoginResult{Success: true},
				passwords:    []entity.AdminPassword{{ID: 7, Password: "only"}},
				deleteResult: true,
			}
			auth := NewAuthService(gw, session.NewMemoryStore())

			ctx := context.Background()
			require.True(t, auth.Login(ctx, testSID, "only"))

			assert.False(t, auth.DeletePassword(ctx, testSID, tt.targetID))
			assert.Equal(t, 0, gw.deleteCalls, "guard must fire before any network call")
			assert.Equal(t, []entity.AdminPassword{{ID: 7, Password: "only"}}, auth.Passwords(testSID))
		})
	}
}

func TestDeletePasswordRemovesFromCache(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult:  gateway.LoginResult{Success: true},
		passwords:    []entity.AdminPassword{{ID: 1}, {ID: 2}, {ID: 3}},
		deleteResult: true,
	}
	auth := NewAuthService(gw, session.NewMemoryStore())

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "secret"))
	require.True(t, auth.DeletePassword(ctx, testSID, 2))

	list := auth.Passwords(testSID)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestDeletePasswordUpstreamFailure(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult:  gateway.LoginResult{Success: true},
		passwords:    []entity.AdminPassword{{ID: 1}, {ID: 2}},
		deleteResult: false,
	}
	auth := NewAuthService(gw, session.NewMemoryStore())

	ctx := context.Background()
	require.True(t, auth.Login(ctx, testSID, "secret"))

	assert.False(t, auth.DeletePassword(ctx, testSID, 1))
	assert.Len(t, auth.Passwords(testSID), 2)
}
