package infra_postgres_history

import (
	"context"
	"time"

	"github.com/dxmate/dxmate-bot/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type recordDTO struct {
	ID        uuid.UUID      `db:"id"`
	ReportID  string         `db:"report_id"`
	RoomID    string         `db:"room_id"`
	MatchMode string         `db:"match_mode"`
	Outcome   string         `db:"outcome"`
	Winners   pq.StringArray `db:"winners"`
	Losers    pq.StringArray `db:"losers"`
	SettledAt time.Time      `db:"settled_at"`
}

func toDTO(r model.MatchRecord) recordDTO {
	return recordDTO{
		ID:        r.ID,
		ReportID:  string(r.ReportID),
		RoomID:    string(r.RoomID),
		MatchMode: string(r.MatchMode),
		Outcome:   r.Outcome,
		Winners:   pq.StringArray(r.Winners),
		Losers:    pq.StringArray(r.Losers),
		SettledAt: r.SettledAt,
	}
}

func (d recordDTO) toModel() model.MatchRecord {
	return model.MatchRecord{
		ID:        d.ID,
		ReportID:  model.ReportID(d.ReportID),
		RoomID:    model.RoomID(d.RoomID),
		MatchMode: model.MatchMode(d.MatchMode),
		Outcome:   d.Outcome,
		Winners:   []string(d.Winners),
		Losers:    []string(d.Losers),
		SettledAt: d.SettledAt,
	}
}

// Record stores one settled ballot. A report is recorded at most once.
func (d *Driver) Record(ctx context.Context, r model.MatchRecord) error {
	query := `
		INSERT INTO match_history (id, report_id, room_id, match_mode, outcome, winners, losers, settled_at)
		VALUES (:id, :report_id, :room_id, :match_mode, :outcome, :winners, :losers, :settled_at)
		ON CONFLICT (report_id) DO NOTHING
	`
	_, err := d.db.NamedExecContext(ctx, query, toDTO(r))
	return err
}

func (d *Driver) Recent(ctx context.Context, limit int) ([]model.MatchRecord, error) {
	var rows []recordDTO

	query := `
		SELECT id, report_id, room_id, match_mode, outcome, winners, losers, settled_at
		FROM match_history
		ORDER BY settled_at DESC
		LIMIT $1
	`
	if err := d.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, err
	}

	records := make([]model.MatchRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toModel())
	}
	return records, nil
}
