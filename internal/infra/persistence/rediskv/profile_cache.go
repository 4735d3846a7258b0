package rediskv

import (
	"context"
	"encoding/json"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	"github.com/redis/go-redis/v9"
)

type profileCache struct {
	client *redis.Client
	prefix string
}

// NewProfileCache stores each profile as a JSON string at {prefix}:users:{uid}.
func NewProfileCache(client *redis.Client, prefix string) repository.ProfileCache {
	return &profileCache{client: client, prefix: prefix}
}

func (c *profileCache) key(uid string) string {
	return c.prefix + ":users:" + uid
}

func (c *profileCache) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	raw, err := c.client.Get(ctx, c.key(uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, wrapError(err, "failed to get profile")
	}

	var profile entity.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return &profile, nil
}

func (c *profileCache) Save(ctx context.Context, profile *entity.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := c.client.Set(ctx, c.key(profile.UID), raw, 0).Err(); err != nil {
		return wrapError(err, "failed to save profile")
	}

	return nil
}

// Delete issues DEL, which succeeds for missing keys.
func (c *profileCache) Delete(ctx context.Context, uid string) error {
	if err := c.client.Del(ctx, c.key(uid)).Err(); err != nil {
		return wrapError(err, "failed to delete profile")
	}

	return nil
}

type connectivityProbe struct {
	client *redis.Client
}

// NewConnectivityProbe probes Redis with PING.
func NewConnectivityProbe(client *redis.Client) service.ConnectivityProbe {
	return &connectivityProbe{client: client}
}

func (p *connectivityProbe) Probe(ctx context.Context) (bool, error) {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return false, wrapError(err, "connectivity probe failed")
	}

	return true, nil
}
