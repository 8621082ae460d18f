package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("session not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the session together with its exercise rows. Either all
// rows land or none do.
func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO session (id, user_id, date, duration_min, notes, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6);
	`,
		session.ID, session.UserID, session.Date,
		session.DurationMin, session.Notes, session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	for i := range session.Exercises {
		se := &session.Exercises[i]
		if se.ID == "" {
			se.ID = uuid.NewString()
		}
		se.SessionID = session.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO session_exercise (id, session_id, exercise_id, sets, reps, weight_kg)
			VALUES ($1, $2, $3, $4, $5, $6);
		`,
			se.ID, se.SessionID, se.ExerciseID, se.Sets, se.Reps, se.WeightKg,
		)
		if err != nil {
			return nil, err
		}
	}

	span.SetAttributes(attribute.String("session.id", session.ID))
	return &session, nil
}

// Update rewrites the session row and recreates all its exercise rows.
func (r *Repo) Update(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", session.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE session SET date = $1, duration_min = $2, notes = NULLIF($3, '')
		WHERE id = $4;
	`,
		session.Date, session.DurationMin, session.Notes, session.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM session_exercise WHERE session_id = $1;`,
		session.ID,
	); err != nil {
		return err
	}

	for i := range session.Exercises {
		se := &session.Exercises[i]
		if se.ID == "" {
			se.ID = uuid.NewString()
		}
		se.SessionID = session.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO session_exercise (id, session_id, exercise_id, sets, reps, weight_kg)
			VALUES ($1, $2, $3, $4, $5, $6);
		`,
			se.ID, se.SessionID, se.ExerciseID, se.Sets, se.Reps, se.WeightKg,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// Delete removes the session and all its exercise rows.
func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`DELETE FROM session_exercise WHERE session_id = $1;`,
		id,
	); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM session WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	session := &Session{}
	var notes *string
	err = r.db.
		QueryRow(ctx, `
			SELECT id, user_id, date, duration_min, notes, created_at
			FROM session
			WHERE id = $1;
		`, id).
		Scan(
			&session.ID, &session.UserID, &session.Date,
			&session.DurationMin, &notes, &session.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if notes != nil {
		session.Notes = *notes
	}

	session.Exercises, err = r.sessionExercises(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("get session exercises: %w", err)
	}

	return session, nil
}

// List returns a user's sessions, newest first, optionally narrowed
// to a date range.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, duration_min, notes, created_at
		FROM session
			WHERE user_id = $1
			AND ($2::timestamp IS NULL OR date >= $2)
			AND ($3::timestamp IS NULL OR date <= $3)
		ORDER BY date DESC;
	`,
		params.UserID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	found := make([]Session, 0)
	for rows.Next() {
		var s Session
		var notes *string
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.DurationMin, &notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		if notes != nil {
			s.Notes = *notes
		}
		found = append(found, s)
	}

	for i := range found {
		found[i].Exercises, err = r.sessionExercises(ctx, found[i].ID)
		if err != nil {
			return nil, fmt.Errorf("get session exercises: %w", err)
		}
	}

	return found, nil
}

func (r *Repo) sessionExercises(ctx context.Context, sessionID string) ([]SessionExercise, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, exercise_id, sets, reps, weight_kg
		FROM session_exercise
		WHERE session_id = $1
		ORDER BY id;
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessionExercises := make([]SessionExercise, 0)
	for rows.Next() {
		var se SessionExercise
		if err := rows.Scan(
			&se.ID, &se.SessionID, &se.ExerciseID, &se.Sets, &se.Reps, &se.WeightKg,
		); err != nil {
			return nil, err
		}
		sessionExercises = append(sessionExercises, se)
	}

	return sessionExercises, nil
}
