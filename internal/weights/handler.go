package weights

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vansan/gymtrack/internal/telemetry/metrics"
	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=weights_mocks_test.go -package=weights_test

type weightsRepo interface {
	Upsert(ctx context.Context, entry Entry) (*Entry, error)
	ListLatest(ctx context.Context, userID string, limit int) ([]Entry, error)
}

type Handler struct {
	repo    weightsRepo
	metrics *metrics.Manager
}

func NewHandler(repo weightsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("add weight entry, unmarshal json params: %s", err)
		http.Error(w, "add weight entry failed", http.StatusBadRequest)
		return
	}

	if entry.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if entry.WeightKg <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}

	if entry.WeekStart.IsZero() {
		entry.WeekStart = time.Now()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	savedEntry, err := handler.repo.Upsert(ctx, entry)
	if err != nil {
		log.Errorf("failed to upsert weight entry for user [%s]: %s", entry.UserID, err)
		http.Error(w, "error, failed to save weight entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWeightEntries.Inc()

	savedEntryJson, err := json.Marshal(savedEntry)
	if err != nil {
		log.Errorf("failed to marshal weight entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("weight entry saved: user %s, week %s", savedEntry.UserID, savedEntry.WeekStart.Format(time.DateOnly))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedEntryJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weights.list")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "error, invalid <limit> param", http.StatusBadRequest)
			return
		}
	}

	entries, err := handler.repo.ListLatest(ctx, userID, limit)
	if err != nil {
		log.Errorf("failed to list weight entries for user %s: %s", userID, err)
		http.Error(w, "failed to list weight entries", http.StatusInternalServerError)
		return
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal weight entries: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}
