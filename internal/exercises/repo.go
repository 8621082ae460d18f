package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrExerciseExists signals a case-insensitive name collision.
	ErrExerciseExists = errors.New("exercise already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise (id, name, category, creator_id, created_at)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5);`,
		exercise.ID, exercise.Name, exercise.Category, exercise.CreatorID, exercise.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, creator_id, created_at FROM exercise WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &found[0], nil
}

func (r *Repo) List(ctx context.Context, filter ListFilter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", filter.Category))
	span.SetAttributes(attribute.String("creator_id", filter.CreatorID))
	span.SetAttributes(attribute.String("search", filter.Search))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, category, creator_id, created_at
			FROM exercise
				WHERE ($1::text = '' OR category = $1)
				AND ($2::text = '' OR creator_id = $2)
				AND ($3::text = '' OR name ILIKE '%' || $3 || '%')
			ORDER BY name;`,
		filter.Category, filter.CreatorID, filter.Search,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2exercises(rows)
}

// AllExist reports whether every given ID is present in the catalog.
func (r *Repo) AllExist(ctx context.Context, ids []string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.allexist")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	if len(ids) == 0 {
		return true, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT COUNT(DISTINCT id) FROM exercise WHERE id = ANY($1);`,
		ids,
	)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return false, err
	}

	if !rows.Next() {
		return false, errors.New("unexpected error [no rows next]")
	}

	var count int
	if err := rows.Scan(&count); err != nil {
		return false, fmt.Errorf("rows scan: %w", err)
	}

	distinct := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}

	return count == len(distinct), nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var found []Exercise
	for rows.Next() {
		var e Exercise
		var category, creatorID *string
		if err := rows.Scan(&e.ID, &e.Name, &category, &creatorID, &e.CreatedAt); err != nil {
			return nil, err
		}
		if category != nil {
			e.Category = *category
		}
		if creatorID != nil {
			e.CreatorID = *creatorID
		}
		found = append(found, e)
	}

	if found == nil {
		found = make([]Exercise, 0)
	}

	return found, nil
}
