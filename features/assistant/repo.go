package assistant

import (
	"context"
	"database/sql"
	"encoding/json"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) LogInteraction(ctx context.Context, it *Interaction) error {
	sources, err := json.Marshal(it.Sources)
	if err != nil {
		return err
	}

	userID := it.UserID
	if userID == "" {
		userID = "anonymous"
	}

	query := `INSERT INTO interactions (session_id, user_id, record_id, type, query, response, feedback, sources, sources_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		it.SessionID, userID, nullable(it.RecordID), it.Type,
		it.Query, it.Response, nullable(it.Feedback), sources, it.SourcesCount,
	).Scan(&it.ID, &it.CreatedAt)
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&count)
	return count, err
}

func (r *PostgresRepo) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT session_id) FROM interactions`).Scan(&count)
	return count, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
