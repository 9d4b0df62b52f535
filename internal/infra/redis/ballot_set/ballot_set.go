package infra_redis_ballot_set

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/go-redis/redis"
)

// Driver keeps ballots awaiting quorum in one hash, field = report id.
type Driver struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

type Option func(*Driver)

func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

func New(
	client *redis.Client,
	key string,
	opts ...Option,
) *Driver {
	d := &Driver{
		client: client,
		key:    key,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) Track(_ context.Context, b model.Ballot) error {
	value, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return d.client.HSet(d.key, string(b.ReportID), value).Err()
}

func (d *Driver) Untrack(_ context.Context, id model.ReportID) error {
	return d.client.HDel(d.key, string(id)).Err()
}

// Pending returns tracked ballots, oldest first. Undecodable entries are dropped.
func (d *Driver) Pending(_ context.Context) ([]model.Ballot, error) {
	entries, err := d.client.HGetAll(d.key).Result()
	if err != nil {
		return nil, err
	}

	ballots := make([]model.Ballot, 0, len(entries))
	for field, raw := range entries {
		var b model.Ballot
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			d.logger.Warn("dropping undecodable ballot", "report_id", field, "error", err)
			if err := d.client.HDel(d.key, field).Err(); err != nil {
				d.logger.Warn("failed to drop undecodable ballot", "report_id", field, "error", err)
			}
			continue
		}
		ballots = append(ballots, b)
	}
	sort.Slice(ballots, func(i, j int) bool {
		return ballots[i].OpenedAt.Before(ballots[j].OpenedAt)
	})
	return ballots, nil
}
