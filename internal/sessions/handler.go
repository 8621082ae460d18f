package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vansan/gymtrack/internal/exercises"
	"github.com/vansan/gymtrack/internal/telemetry/metrics"
	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/internal/users"
	"github.com/vansan/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context, params ListParams) ([]Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

type userGetter interface {
	Get(ctx context.Context, id string) (*users.User, error)
}

type exercisesChecker interface {
	AllExist(ctx context.Context, ids []string) (bool, error)
}

type DeleteSessionResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateSessionResponse struct {
	UpdatedID string `json:"updatedId"`
}

type Handler struct {
	repo      sessionsRepo
	users     userGetter
	exercises exercisesChecker
	metrics   *metrics.Manager
}

func NewHandler(
	repo sessionsRepo,
	users userGetter,
	exercises exercisesChecker,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:      repo,
		users:     users,
		exercises: exercises,
		metrics:   metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("add session, unmarshal json params: %s", err)
		http.Error(w, "add session failed", http.StatusBadRequest)
		return
	}

	if badReqMsg := handler.validateSession(ctx, &session); badReqMsg != "" {
		http.Error(w, badReqMsg, http.StatusBadRequest)
		return
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	addedSession, err := handler.repo.Add(ctx, session)
	if err != nil {
		log.Errorf("failed to add session for user [%s]: %s", session.UserID, err)
		http.Error(w, "error, failed to add session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsAdded.Inc()

	addedSessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("failed to marshal added session: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new session added: %s", addedSession.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSessionJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get session %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	params := ListParams{UserID: userID}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			http.Error(w, "error, invalid <from> param", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			http.Error(w, "error, invalid <to> param", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	listed, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list sessions for user %s: %s", userID, err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	listedJson, err := json.Marshal(listed)
	if err != nil {
		log.Errorf("failed to marshal sessions: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listedJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("update session, unmarshal json params: %s", err)
		http.Error(w, "update session failed", http.StatusBadRequest)
		return
	}
	session.ID = id

	current, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get session %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if session.UserID == "" {
		session.UserID = current.UserID
	}

	if badReqMsg := handler.validateSession(ctx, &session); badReqMsg != "" {
		http.Error(w, badReqMsg, http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &session); err != nil {
		log.Errorf("failed to update session %s: %s", id, err)
		http.Error(w, "error, failed to update session", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateSessionResponse{
		UpdatedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("session updated: %s", id)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session %s: %s", id, err)
		http.Error(w, "session not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSessionResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

// validateSession returns a non-empty message when the session cannot
// be stored as given.
func (handler *Handler) validateSession(ctx context.Context, session *Session) string {
	if session.UserID == "" {
		return "error, user id empty"
	}
	if session.Date.IsZero() {
		return "error, session date empty"
	}
	if session.DurationMin <= 0 {
		return "error, duration must be positive"
	}

	if _, err := handler.users.Get(ctx, session.UserID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return "error, user not found"
		}
		log.Errorf("failed to check user %s: %s", session.UserID, err)
		return "error, failed to check user"
	}

	exerciseIDs := make([]string, 0, len(session.Exercises))
	for _, se := range session.Exercises {
		if se.ExerciseID == "" {
			return "error, exercise id empty"
		}
		if se.Sets < 1 {
			return "error, sets must be at least 1"
		}
		if se.Reps < 1 {
			return "error, reps must be at least 1"
		}
		if se.WeightKg < 0 {
			return "error, weight must not be negative"
		}
		exerciseIDs = append(exerciseIDs, se.ExerciseID)
	}

	allExist, err := handler.exercises.AllExist(ctx, exerciseIDs)
	if err != nil {
		if errors.Is(err, exercises.ErrExerciseNotFound) {
			return "error, unknown exercise"
		}
		log.Errorf("failed to check exercises: %s", err)
		return "error, failed to check exercises"
	}
	if !allExist {
		return "error, unknown exercise"
	}

	return ""
}
