package infra_redis_rank_cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/go-redis/redis"
)

// Driver caches rank lookups keyed by the exact (mu, sigma) pair.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Set(_ context.Context, skill model.Skill, rank model.Rank) error {
	value, err := json.Marshal(rank)
	if err != nil {
		return err
	}
	return d.client.Set(d.getFullKey(skill), value, d.ttl).Err()
}

// Get reports false on a cache miss.
func (d *Driver) Get(_ context.Context, skill model.Skill) (model.Rank, bool, error) {
	val, err := d.client.Get(d.getFullKey(skill)).Bytes()
	if err == redis.Nil {
		return model.Rank{}, false, nil
	}
	if err != nil {
		return model.Rank{}, false, err
	}

	var rank model.Rank
	if err := json.Unmarshal(val, &rank); err != nil {
		return model.Rank{}, false, err
	}
	return rank, true, nil
}

func (d *Driver) getFullKey(skill model.Skill) string {
	key := strconv.FormatFloat(skill.Mu, 'g', -1, 64) + ":" + strconv.FormatFloat(skill.Sigma, 'g', -1, 64)
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
