package usecase

import (
	"yelocar/internal/domain/entity"
)

// SessionUsecase is the session context shared by the account and profile
// flows. It holds one session per uid and notifies subscribers on every
// transition.
type SessionUsecase interface {
	// Begin moves the session to Loading.
	Begin(identity entity.Identity)

	// Ready moves the session to Ready with profile.
	Ready(identity entity.Identity, profile *entity.UserProfile)

	// ReadyDegraded moves the session to Ready with a profile served after a
	// failed read. The stored record is unknown, so it must not be written back.
	ReadyDegraded(identity entity.Identity, profile *entity.UserProfile)

	// End moves the session to Unauthenticated and forgets it.
	End(uid string)

	// Current returns the session snapshot for uid.
	Current(uid string) entity.Session

	// Subscribe registers listener for transitions of uid's session.
	Subscribe(uid string, listener entity.SessionListener) *entity.Disposer
}
