package summaries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/pkg"

	"github.com/google/uuid"
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

// GetForWeek returns the stored summary for (userID, weekStart), nil
// when no row exists.
func (r *Repo) GetForWeek(ctx context.Context, userID string, weekStart time.Time) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.getforweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("week_start", weekStart.Format(time.DateOnly)))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, week_start, sessions, total_min, total_exercises, created_at
		FROM weekly_summary
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

	if !rows.Next() {
		return nil, nil
	}

	var summary WeeklySummary
	if err := rows.Scan(
		&summary.ID, &summary.UserID, &summary.WeekStart,
		&summary.Sessions, &summary.TotalMin, &summary.TotalExercises,
		&summary.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &summary, nil
}

// CreateIfAbsent persists the summary unless a row for the same
// (userID, weekStart) already exists. Two first-time requests can race
// here; the loser re-fetches and returns the winner's row.
func (r *Repo) CreateIfAbsent(ctx context.Context, summary WeeklySummary) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.createifabsent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", summary.UserID))

	if summary.ID == "" {
		summary.ID = uuid.NewString()
	}
	summary.WeekStart = pkg.StartOfISOWeek(summary.WeekStart)

	tag, err := r.db.Exec(ctx, `
		INSERT INTO weekly_summary
			(id, user_id, week_start, sessions, total_min, total_exercises, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, week_start) DO NOTHING;
	`,
		summary.ID, summary.UserID, summary.WeekStart,
		summary.Sessions, summary.TotalMin, summary.TotalExercises,
		summary.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		// lost the race, someone else created it first
		stored, err := r.GetForWeek(ctx, summary.UserID, summary.WeekStart)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, errors.New("unexpected error, summary vanished after conflict")
		}
		return stored, nil
	}

	return &summary, nil
}

// Upsert unconditionally overwrites the summary for (userID, weekStart).
// Only the bulk regeneration path uses it.
func (r *Repo) Upsert(ctx context.Context, summary WeeklySummary) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", summary.UserID))

	if summary.ID == "" {
		summary.ID = uuid.NewString()
	}
	summary.WeekStart = pkg.StartOfISOWeek(summary.WeekStart)

	err = r.db.
		QueryRow(ctx, `
			INSERT INTO weekly_summary
				(id, user_id, week_start, sessions, total_min, total_exercises, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, week_start) DO UPDATE SET
				sessions = EXCLUDED.sessions,
				total_min = EXCLUDED.total_min,
				total_exercises = EXCLUDED.total_exercises
			RETURNING id, created_at;
		`,
			summary.ID, summary.UserID, summary.WeekStart,
			summary.Sessions, summary.TotalMin, summary.TotalExercises,
			summary.CreatedAt,
		).
		Scan(&summary.ID, &summary.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
