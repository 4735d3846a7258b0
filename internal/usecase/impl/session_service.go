package impl

import (
	"log/slog"
	"sync"

	"yelocar/internal/domain/entity"
	"yelocar/internal/usecase"
)

type sessionSlot struct {
	session   entity.Session
	listeners map[uint64]entity.SessionListener
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	mu     sync.Mutex
	slots  map[string]*sessionSlot
	nextID uint64
	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		slots:  make(map[string]*sessionSlot),
		logger: logger,
	}
}

func (srv *sessionService) Begin(identity entity.Identity) {
	srv.transition(identity.UID, entity.Session{
		State:    entity.SessionLoading,
		Identity: &identity,
	})
}

func (srv *sessionService) Ready(identity entity.Identity, profile *entity.UserProfile) {
	srv.transition(identity.UID, entity.Session{
		State:    entity.SessionReady,
		Identity: &identity,
		Profile:  profile.Clone(),
	})
}

func (srv *sessionService) ReadyDegraded(identity entity.Identity, profile *entity.UserProfile) {
	srv.transition(identity.UID, entity.Session{
		State:    entity.SessionReady,
		Identity: &identity,
		Profile:  profile.Clone(),
		Degraded: true,
	})
}

// End drops the session but keeps subscribers so they see later sign-ins.
func (srv *sessionService) End(uid string) {
	srv.transition(uid, entity.Session{State: entity.SessionUnauthenticated})
}

func (srv *sessionService) Current(uid string) entity.Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	slot, ok := srv.slots[uid]
	if !ok {
		return entity.Session{State: entity.SessionUnauthenticated}
	}

	return snapshot(slot.session)
}

func (srv *sessionService) Subscribe(uid string, listener entity.SessionListener) *entity.Disposer {
	srv.mu.Lock()
	slot := srv.slot(uid)
	srv.nextID++
	id := srv.nextID
	slot.listeners[id] = listener
	srv.mu.Unlock()

	return entity.NewDisposer(func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()

		if slot, ok := srv.slots[uid]; ok {
			delete(slot.listeners, id)
			srv.gc(uid, slot)
		}
	})
}

// transition stores next and notifies listeners outside the lock.
func (srv *sessionService) transition(uid string, next entity.Session) {
	srv.mu.Lock()
	slot := srv.slot(uid)
	slot.session = next
	listeners := make([]entity.SessionListener, 0, len(slot.listeners))
	for _, l := range slot.listeners {
		listeners = append(listeners, l)
	}
	srv.gc(uid, slot)
	srv.mu.Unlock()

	srv.logger.Debug("Session transition", slog.String("uid", uid), slog.String("state", string(next.State)))

	for _, l := range listeners {
		l(snapshot(next))
	}
}

// slot must be called with mu held.
func (srv *sessionService) slot(uid string) *sessionSlot {
	slot, ok := srv.slots[uid]
	if !ok {
		slot = &sessionSlot{
			session:   entity.Session{State: entity.SessionUnauthenticated},
			listeners: make(map[uint64]entity.SessionListener),
		}
		srv.slots[uid] = slot
	}

	return slot
}

// gc forgets idle slots. Must be called with mu held.
func (srv *sessionService) gc(uid string, slot *sessionSlot) {
	if slot.session.State == entity.SessionUnauthenticated && len(slot.listeners) == 0 {
		delete(srv.slots, uid)
	}
}

func snapshot(s entity.Session) entity.Session {
	out := entity.Session{State: s.State, Profile: s.Profile.Clone(), Degraded: s.Degraded}
	if s.Identity != nil {
		id := *s.Identity
		out.Identity = &id
	}

	return out
}
