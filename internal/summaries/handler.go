package summaries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=summaries_test

type summariesService interface {
	WeeklyOverview(ctx context.Context, userID string, weekStart time.Time) (*WeeklyOverview, error)
	Monthly(ctx context.Context, userID string, year int, month time.Month) (*MonthlySummary, error)
	Annual(ctx context.Context, userID string, year int) (*AnnualSummary, error)
	SharedWeekly(ctx context.Context, weekStart time.Time) (*SharedWeeklySummary, error)
	RegeneratePreviousWeek(ctx context.Context) ([]RegenerationResult, error)
}

type RegenerateResponse struct {
	Results []RegenerationResult `json:"results"`
	Errors  string               `json:"errors,omitempty"`
}

type Handler struct {
	service summariesService
	now     func() time.Time
}

func NewHandler(service summariesService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

// weekStartParam reads the optional ?weekStart=2006-01-02 query param,
// defaulting to the current week.
func (handler *Handler) weekStartParam(r *http.Request) (time.Time, error) {
	weekStartStr := r.URL.Query().Get("weekStart")
	if weekStartStr == "" {
		return handler.now(), nil
	}
	return time.Parse(time.DateOnly, weekStartStr)
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.weekly")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	weekStart, err := handler.weekStartParam(r)
	if err != nil {
		http.Error(w, "error, invalid <weekStart> param", http.StatusBadRequest)
		return
	}

	overview, err := handler.service.WeeklyOverview(ctx, userID, weekStart)
	if err != nil {
		log.Errorf("failed to get weekly overview for user %s: %s", userID, err)
		http.Error(w, "failed to get weekly overview", http.StatusInternalServerError)
		return
	}

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("failed to marshal weekly overview: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewJson, http.StatusOK)
}

func (handler *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.monthly")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "error, year NaN", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "error, invalid month", http.StatusBadRequest)
		return
	}

	monthlySummary, err := handler.service.Monthly(ctx, userID, year, time.Month(month))
	if err != nil {
		log.Errorf("failed to get monthly summary for user %s [%d-%d]: %s", userID, year, month, err)
		http.Error(w, "failed to get monthly summary", http.StatusInternalServerError)
		return
	}

	monthlyJson, err := json.Marshal(monthlySummary)
	if err != nil {
		log.Errorf("failed to marshal monthly summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, monthlyJson, http.StatusOK)
}

func (handler *Handler) HandleAnnual(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.annual")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "error, year NaN", http.StatusBadRequest)
		return
	}

	annualSummary, err := handler.service.Annual(ctx, userID, year)
	if err != nil {
		log.Errorf("failed to get annual summary for user %s [%d]: %s", userID, year, err)
		http.Error(w, "failed to get annual summary", http.StatusInternalServerError)
		return
	}

	annualJson, err := json.Marshal(annualSummary)
	if err != nil {
		log.Errorf("failed to marshal annual summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, annualJson, http.StatusOK)
}

func (handler *Handler) HandleSharedWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.sharedweekly")
	defer span.End()

	weekStart, err := handler.weekStartParam(r)
	if err != nil {
		http.Error(w, "error, invalid <weekStart> param", http.StatusBadRequest)
		return
	}

	sharedSummary, err := handler.service.SharedWeekly(ctx, weekStart)
	if err != nil {
		if errors.Is(err, ErrNotEnoughUsers) {
			http.Error(w, "not enough users for a shared summary", http.StatusConflict)
			return
		}
		log.Errorf("failed to get shared weekly summary: %s", err)
		http.Error(w, "failed to get shared weekly summary", http.StatusInternalServerError)
		return
	}

	sharedJson, err := json.Marshal(sharedSummary)
	if err != nil {
		log.Errorf("failed to marshal shared weekly summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sharedJson, http.StatusOK)
}

// HandleRegenerate finalizes last week's summaries for all users. It
// is meant to be hit by an external scheduler shortly after the week
// rolls over.
func (handler *Handler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.regenerate")
	defer span.End()

	results, err := handler.service.RegeneratePreviousWeek(ctx)
	if err != nil && results == nil {
		log.Errorf("failed to regenerate weekly summaries: %s", err)
		http.Error(w, "failed to regenerate weekly summaries", http.StatusInternalServerError)
		return
	}

	regenerateResponse := RegenerateResponse{
		Results: results,
	}
	if err != nil {
		// partial failure, the successful users still got their rows
		regenerateResponse.Errors = err.Error()
	}

	respJson, err := json.Marshal(regenerateResponse)
	if err != nil {
		log.Errorf("failed to marshal regenerate response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
