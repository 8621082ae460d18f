package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/internal/weights"
	"github.com/vansan/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	ListForUser(ctx context.Context, userID string) ([]Goal, error)
	GetForUser(ctx context.Context, userID, goalType string) (*Goal, error)
	Delete(ctx context.Context, id string) error
}

type weightEntriesLister interface {
	ListLatest(ctx context.Context, userID string, limit int) ([]weights.Entry, error)
}

type DeleteGoalResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	repo          goalsRepo
	weightEntries weightEntriesLister
}

func NewHandler(repo goalsRepo, weightEntries weightEntriesLister) *Handler {
	return &Handler{
		repo:          repo,
		weightEntries: weightEntries,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("add goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if !ValidType(goal.Type) {
		http.Error(w, "error, invalid goal type", http.StatusBadRequest)
		return
	}
	if goal.TargetValue <= 0 {
		http.Error(w, "error, target value must be positive", http.StatusBadRequest)
		return
	}

	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}

	addedGoal, err := handler.repo.Add(ctx, goal)
	if err != nil {
		if errors.Is(err, ErrGoalExists) {
			http.Error(w, "goal of this type already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add goal for user [%s]: %s", goal.UserID, err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	addedGoalJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("failed to marshal added goal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new goal added: user %s, type %s", addedGoal.UserID, addedGoal.Type)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedGoalJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	listed, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("failed to list goals for user %s: %s", userID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	listedJson, err := json.Marshal(listed)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listedJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete goal %s: %s", id, err)
		http.Error(w, "goal not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteGoalResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleWeightProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.weightprogress")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	goal, err := handler.repo.GetForUser(ctx, userID, TypeWeight)
	if err != nil {
		log.Errorf("failed to get weight goal for user %s: %s", userID, err)
		http.Error(w, "failed to get weight goal", http.StatusInternalServerError)
		return
	}
	if goal == nil {
		http.Error(w, "weight goal not found", http.StatusNotFound)
		return
	}

	entries, err := handler.weightEntries.ListLatest(ctx, userID, 0)
	if err != nil {
		log.Errorf("failed to list weight entries for user %s: %s", userID, err)
		http.Error(w, "failed to list weight entries", http.StatusInternalServerError)
		return
	}

	progress := WeightGoalProgress(*goal, entries)
	if progress == nil {
		http.Error(w, "no weight entries to measure progress", http.StatusNotFound)
		return
	}

	progressJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("failed to marshal weight progress: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}
