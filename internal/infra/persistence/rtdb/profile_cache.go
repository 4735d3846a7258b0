// Package rtdb keeps user profiles in the Firebase Realtime Database.
package rtdb

import (
	"context"
	"net"
	"strings"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	"firebase.google.com/go/v4/db"
)

const (
	usersPath     = "users/"
	connectedPath = ".info/connected"
)

type profileCache struct {
	client *db.Client
}

// NewProfileCache stores profiles at users/{uid}.
func NewProfileCache(client *db.Client) repository.ProfileCache {
	return &profileCache{client: client}
}

func (c *profileCache) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	if err := c.client.NewRef(usersPath+uid).Get(ctx, &profile); err != nil {
		return nil, wrapError(err, "failed to get profile")
	}
	if profile == nil {
		return nil, repository.ErrProfileNotFound
	}
	if profile.UID == "" {
		profile.UID = uid
	}

	return profile, nil
}

func (c *profileCache) Save(ctx context.Context, profile *entity.UserProfile) error {
	if err := c.client.NewRef(usersPath+profile.UID).Set(ctx, profile); err != nil {
		return wrapError(err, "failed to save profile")
	}

	return nil
}

// Delete removes users/{uid}. Removing a missing node is not an error in RTDB.
func (c *profileCache) Delete(ctx context.Context, uid string) error {
	if err := c.client.NewRef(usersPath + uid).Delete(ctx); err != nil {
		return wrapError(err, "failed to delete profile")
	}

	return nil
}

type connectivityProbe struct {
	client *db.Client
}

// NewConnectivityProbe reads the reserved .info/connected node. A completed
// round trip means the database is reachable.
func NewConnectivityProbe(client *db.Client) service.ConnectivityProbe {
	return &connectivityProbe{client: client}
}

func (p *connectivityProbe) Probe(ctx context.Context) (bool, error) {
	var connected any
	if err := p.client.NewRef(connectedPath).Get(ctx, &connected); err != nil {
		return false, wrapError(err, "connectivity probe failed")
	}

	return true, nil
}

func wrapError(err error, msg string) error {
	if isUnavailable(err) {
		return errors.Wrap(errors.Join(repository.ErrStoreUnavailable, err), msg)
	}

	return errors.Wrap(err, msg)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "http error status: 503") || strings.Contains(msg, "unavailable")
}
