package weights

import (
	"context"
	"fmt"
	"time"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the entry for the Monday of the given week, overwriting
// a previous weigh-in for the same week.
func (r *Repo) Upsert(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", entry.UserID))

	entry.WeekStart = pkg.StartOfISOWeek(entry.WeekStart)
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	err = r.db.
		QueryRow(ctx, `
			INSERT INTO weight_entry (id, user_id, week_start, weight_kg, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, week_start)
				DO UPDATE SET weight_kg = EXCLUDED.weight_kg
			RETURNING id, created_at;
		`,
			entry.ID, entry.UserID, entry.WeekStart, entry.WeightKg, entry.CreatedAt,
		).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListLatest returns up to limit entries for the user, newest week first.
// Non-positive limit means no limit.
func (r *Repo) ListLatest(ctx context.Context, userID string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.listlatest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, week_start, weight_kg, created_at
		FROM weight_entry
		WHERE user_id = $1
		ORDER BY week_start DESC
		LIMIT NULLIF($2::int, 0);
	`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2entries(rows)
}

// ListBefore returns up to limit entries strictly before the given week,
// newest first. Used for the weight trend projection.
func (r *Repo) ListBefore(ctx context.Context, userID string, weekStart time.Time, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.listbefore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("week_start", weekStart.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, week_start, weight_kg, created_at
		FROM weight_entry
		WHERE user_id = $1 AND week_start < $2
		ORDER BY week_start DESC
		LIMIT $3;
	`,
		userID, pkg.StartOfISOWeek(weekStart), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2entries(rows)
}

// GetForWeek returns the user's entry for the given week, nil when absent.
func (r *Repo) GetForWeek(ctx context.Context, userID string, weekStart time.Time) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.getforweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, week_start, weight_kg, created_at
		FROM weight_entry
		WHERE user_id = $1 AND week_start = $2;
	`,
		userID, pkg.StartOfISOWeek(weekStart),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// ListInRange returns entries with week_start within [from, to], oldest first.
func (r *Repo) ListInRange(ctx context.Context, userID string, from, to time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weights.listinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, week_start, weight_kg, created_at
		FROM weight_entry
		WHERE user_id = $1 AND week_start >= $2 AND week_start <= $3
		ORDER BY week_start;
	`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2entries(rows)
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.WeekStart, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
