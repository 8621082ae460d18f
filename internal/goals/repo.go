package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	// ErrGoalExists signals the user already has a goal of this type.
	ErrGoalExists = errors.New("goal already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", goal.UserID))
	span.SetAttributes(attribute.String("type", goal.Type))

	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO goal (id, user_id, type, target_value, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`,
		goal.ID, goal.UserID, goal.Type, goal.TargetValue, goal.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrGoalExists
		}
		return nil, err
	}

	return &goal, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, target_value, created_at
		FROM goal
		WHERE user_id = $1
		ORDER BY created_at;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	listed := make([]Goal, 0)
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Type, &g.TargetValue, &g.CreatedAt); err != nil {
			return nil, err
		}
		listed = append(listed, g)
	}

	return listed, nil
}

// GetForUser returns the user's goal of the given type, nil when absent.
func (r *Repo) GetForUser(ctx context.Context, userID, goalType string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.getforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("type", goalType))

	listed, err := r.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range listed {
		if listed[i].Type == goalType {
			return &listed[i], nil
		}
	}
	return nil, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
