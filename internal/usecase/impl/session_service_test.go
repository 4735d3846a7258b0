package impl

import (
	"testing"

	"yelocar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Lifecycle(t *testing.T) {
	srv := NewSessionService(discardLogger())
	identity := entity.Identity{UID: "u1", Email: "asha@example.com"}

	assert.Equal(t, entity.SessionUnauthenticated, srv.Current("u1").State)

	srv.Begin(identity)
	assert.Equal(t, entity.SessionLoading, srv.Current("u1").State)

	profile := &entity.UserProfile{UID: "u1", FullName: "Asha Rao"}
	srv.Ready(identity, profile)

	current := srv.Current("u1")
	require.Equal(t, entity.SessionReady, current.State)
	assert.Equal(t, "Asha Rao", current.Profile.FullName)
	assert.Equal(t, "asha@example.com", current.Identity.Email)

	srv.End("u1")
	assert.Equal(t, entity.SessionUnauthenticated, srv.Current("u1").State)
	assert.Nil(t, srv.Current("u1").Profile)
}

func TestSessionService_SnapshotsAreCopies(t *testing.T) {
	srv := NewSessionService(discardLogger())
	identity := entity.Identity{UID: "u1"}
	profile := &entity.UserProfile{UID: "u1", FullName: "Asha Rao"}

	srv.Ready(identity, profile)
	profile.FullName = "changed by caller"

	got := srv.Current("u1")
	got.Profile.FullName = "changed by reader"

	assert.Equal(t, "Asha Rao", srv.Current("u1").Profile.FullName)
}

func TestSessionService_DegradedFlagFollowsLastTransition(t *testing.T) {
	srv := NewSessionService(discardLogger())
	identity := entity.Identity{UID: "u1"}

	srv.ReadyDegraded(identity, &entity.UserProfile{UID: "u1"})
	current := srv.Current("u1")
	assert.Equal(t, entity.SessionReady, current.State)
	assert.True(t, current.Degraded)

	srv.Ready(identity, &entity.UserProfile{UID: "u1", FullName: "Asha Rao"})
	assert.False(t, srv.Current("u1").Degraded)
}

func TestSessionService_SubscribersSeeTransitions(t *testing.T) {
	srv := NewSessionService(discardLogger())
	identity := entity.Identity{UID: "u1"}

	var states []entity.SessionState
	disposer := srv.Subscribe("u1", func(s entity.Session) {
		states = append(states, s.State)
	})

	srv.Begin(identity)
	srv.Ready(identity, &entity.UserProfile{UID: "u1"})
	srv.End("u1")
	srv.Begin(identity)

	disposer.Dispose()
	disposer.Dispose()
	srv.Ready(identity, &entity.UserProfile{UID: "u1"})

	assert.Equal(t, []entity.SessionState{
		entity.SessionLoading,
		entity.SessionReady,
		entity.SessionUnauthenticated,
		entity.SessionLoading,
	}, states)
}

func TestSessionService_SessionsAreIsolatedPerUser(t *testing.T) {
	srv := NewSessionService(discardLogger())

	calls := 0
	srv.Subscribe("u2", func(entity.Session) { calls++ })

	srv.Ready(entity.Identity{UID: "u1"}, &entity.UserProfile{UID: "u1"})

	assert.Zero(t, calls)
	assert.Equal(t, entity.SessionUnauthenticated, srv.Current("u2").State)
}

func TestSessionService_ListenerMayReadSession(t *testing.T) {
	srv := NewSessionService(discardLogger())

	var seen entity.SessionState
	srv.Subscribe("u1", func(entity.Session) {
		seen = srv.Current("u1").State
	})

	srv.Begin(entity.Identity{UID: "u1"})

	assert.Equal(t, entity.SessionLoading, seen)
}
