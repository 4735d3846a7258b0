package entity

import "sync"

// SessionState is the lifecycle stage of a signed-in user's session.
type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionLoading         SessionState = "loading"
	SessionReady           SessionState = "ready"
)

// Session is a snapshot of one user's session.
type Session struct {
	State    SessionState
	Identity *Identity
	Profile  *UserProfile

	// Degraded marks a Ready profile that stands in for an unreadable record.
	Degraded bool
}

// SessionListener observes session transitions.
type SessionListener func(Session)

// Disposer ends a subscription. Dispose may be called any number of times.
type Disposer struct {
	once    sync.Once
	release func()
}

// NewDisposer wraps release so that it runs at most once.
func NewDisposer(release func()) *Disposer {
	return &Disposer{release: release}
}

// Dispose runs the release function the first time it is called.
func (d *Disposer) Dispose() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		if d.release != nil {
			d.release()
		}
	})
}
