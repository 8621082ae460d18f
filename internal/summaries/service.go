package summaries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vansan/gymtrack/internal/goals"
	"github.com/vansan/gymtrack/internal/sessions"
	"github.com/vansan/gymtrack/internal/telemetry/metrics"
	"github.com/vansan/gymtrack/internal/telemetry/tracing"
	"github.com/vansan/gymtrack/internal/users"
	"github.com/vansan/gymtrack/internal/weights"
	"github.com/vansan/gymtrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=summaries_test

// ErrNotEnoughUsers is returned by the shared summary when fewer than
// two users exist to compare.
var ErrNotEnoughUsers = errors.New("not enough users for a shared summary")

type summariesRepo interface {
	GetForWeek(ctx context.Context, userID string, weekStart time.Time) (*WeeklySummary, error)
	CreateIfAbsent(ctx context.Context, summary WeeklySummary) (*WeeklySummary, error)
	Upsert(ctx context.Context, summary WeeklySummary) (*WeeklySummary, error)
}

type sessionsLister interface {
	List(ctx context.Context, params sessions.ListParams) ([]sessions.Session, error)
}

type usersLister interface {
	List(ctx context.Context) ([]users.User, error)
}

type weightsReader interface {
	GetForWeek(ctx context.Context, userID string, weekStart time.Time) (*weights.Entry, error)
	ListBefore(ctx context.Context, userID string, weekStart time.Time, limit int) ([]weights.Entry, error)
	ListInRange(ctx context.Context, userID string, from, to time.Time) ([]weights.Entry, error)
}

type goalsLister interface {
	ListForUser(ctx context.Context, userID string) ([]goals.Goal, error)
}

type sharedSummaryCache interface {
	GetSharedWeekly(ctx context.Context, weekStart time.Time) (*SharedWeeklySummary, error)
	SetSharedWeekly(ctx context.Context, summary *SharedWeeklySummary) error
}

// Service derives weekly/monthly/annual/shared statistics from raw
// session records and memoizes the weekly ones as persisted rows.
type Service struct {
	repo     summariesRepo
	sessions sessionsLister
	users    usersLister
	weights  weightsReader
	goals    goalsLister
	cache    sharedSummaryCache
	metrics  *metrics.Manager
	now      func() time.Time
}

type ServiceOption func(*Service)

// WithNowFunc replaces the clock, used by tests pinning "now".
func WithNowFunc(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	repo summariesRepo,
	sessionsRepo sessionsLister,
	usersRepo usersLister,
	weightsRepo weightsReader,
	goalsRepo goalsLister,
	cache sharedSummaryCache,
	metricsManager *metrics.Manager,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		repo:     repo,
		sessions: sessionsRepo,
		users:    usersRepo,
		weights:  weightsRepo,
		goals:    goalsRepo,
		cache:    cache,
		metrics:  metricsManager,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// weekStats is a freshly computed, not yet persisted, week aggregate.
type weekStats struct {
	sessions       int
	totalMin       int
	totalExercises int
	trainingDays   []string
}

// computeWeek aggregates the user's sessions within [weekStart, weekEnd].
// totalExercises counts each distinct exercise ID once, no matter how
// many sessions or sets used it.
func (s *Service) computeWeek(ctx context.Context, userID string, weekStart time.Time) (*weekStats, error) {
	weekStart = pkg.StartOfISOWeek(weekStart)
	weekEnd := pkg.EndOfISOWeek(weekStart)

	weekSessions, err := s.sessions.List(ctx, sessions.ListParams{
		UserID: userID,
		From:   &weekStart,
		To:     &weekEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	stats := &weekStats{
		sessions: len(weekSessions),
	}

	distinctExercises := make(map[string]struct{})
	trainingDays := make(map[string]struct{})
	for _, session := range weekSessions {
		stats.totalMin += session.DurationMin
		trainingDays[session.Date.Format(time.DateOnly)] = struct{}{}
		for _, se := range session.Exercises {
			distinctExercises[se.ExerciseID] = struct{}{}
		}
	}
	stats.totalExercises = len(distinctExercises)

	stats.trainingDays = make([]string, 0, len(trainingDays))
	for day := range trainingDays {
		stats.trainingDays = append(stats.trainingDays, day)
	}

	return stats, nil
}

// GetOrCreateWeekly returns the memoized summary for the user's week,
// computing and persisting it on first access. Weeks without sessions
// yield nil and never persist a row. A stored summary is returned
// unchanged, it is never recomputed here.
func (s *Service) GetOrCreateWeekly(ctx context.Context, userID string, weekStart time.Time) (_ *WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.getorcreateweekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	weekStart = pkg.StartOfISOWeek(weekStart)
	span.SetAttributes(attribute.String("week_start", weekStart.Format(time.DateOnly)))

	stored, err := s.repo.GetForWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("get stored summary: %w", err)
	}
	if stored != nil {
		span.SetAttributes(attribute.Bool("memoized", true))
		return stored, nil
	}

	stats, err := s.computeWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	if stats.sessions == 0 {
		// no data, distinct from a zero-valued summary
		return nil, nil
	}

	created, err := s.repo.CreateIfAbsent(ctx, WeeklySummary{
		UserID:         userID,
		WeekStart:      weekStart,
		Sessions:       stats.sessions,
		TotalMin:       stats.totalMin,
		TotalExercises: stats.totalExercises,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("persist summary: %w", err)
	}

	s.metrics.CounterSummariesComputed.Inc()

	return created, nil
}

// WeeklyOverview bundles everything the weekly screen shows: the
// memoized summary, the top exercises, this week's weigh-in, the
// weight projection and the user's goals.
func (s *Service) WeeklyOverview(ctx context.Context, userID string, weekStart time.Time) (_ *WeeklyOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.weeklyoverview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	weekStart = pkg.StartOfISOWeek(weekStart)
	weekEnd := pkg.EndOfISOWeek(weekStart)

	overview := &WeeklyOverview{
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}

	overview.Summary, err = s.GetOrCreateWeekly(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	overview.TopExercises, err = s.topExercises(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	overview.WeightEntry, err = s.weights.GetForWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("get weight entry: %w", err)
	}

	if projection, ok, err := s.projectWeight(ctx, userID, weekStart); err != nil {
		return nil, err
	} else if ok {
		overview.ProjectedWeightKg = &projection
	}

	overview.Goals, err = s.goals.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	return overview, nil
}

// topExercises ranks the week's exercises by how many sessions
// performed them, most used first, top five.
func (s *Service) topExercises(ctx context.Context, userID string, weekStart, weekEnd time.Time) ([]TopExercise, error) {
	weekSessions, err := s.sessions.List(ctx, sessions.ListParams{
		UserID: userID,
		From:   &weekStart,
		To:     &weekEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	counts := make(map[string]int)
	for _, session := range weekSessions {
		seen := make(map[string]struct{})
		for _, se := range session.Exercises {
			if _, ok := seen[se.ExerciseID]; ok {
				continue
			}
			seen[se.ExerciseID] = struct{}{}
			counts[se.ExerciseID]++
		}
	}

	top := make([]TopExercise, 0, len(counts))
	for exerciseID, count := range counts {
		top = append(top, TopExercise{ExerciseID: exerciseID, Count: count})
	}
	sortTopExercises(top)

	if len(top) > 5 {
		top = top[:5]
	}
	return top, nil
}

// ProjectNextWeightKg extrapolates the user's weight one week ahead of
// asOfWeekStart from up to the four most recent earlier weigh-ins.
func (s *Service) ProjectNextWeightKg(ctx context.Context, userID string, asOfWeekStart time.Time) (_ float64, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.projectnextweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	return s.projectWeight(ctx, userID, asOfWeekStart)
}

func (s *Service) projectWeight(ctx context.Context, userID string, asOfWeekStart time.Time) (float64, bool, error) {
	entries, err := s.weights.ListBefore(ctx, userID, asOfWeekStart, projectionWindow)
	if err != nil {
		return 0, false, fmt.Errorf("list weight entries: %w", err)
	}

	projection, ok := ProjectNextWeight(entries)
	return projection, ok, nil
}

// RegeneratePreviousWeek recomputes and overwrites last week's summary
// for every user. One user failing does not stop the others.
func (s *Service) RegeneratePreviousWeek(ctx context.Context) (_ []RegenerationResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.regeneratepreviousweek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	defer func(begin time.Time) {
		s.metrics.HistSummaryRegenDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	previousWeekStart := pkg.StartOfISOWeek(s.now()).AddDate(0, 0, -7)
	span.SetAttributes(attribute.String("week_start", previousWeekStart.Format(time.DateOnly)))

	allUsers, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var errs error
	results := make([]RegenerationResult, 0, len(allUsers))
	for _, user := range allUsers {
		result := RegenerationResult{
			UserID:    user.ID,
			WeekStart: previousWeekStart,
		}

		if regenErr := s.regenerateForUser(ctx, user.ID, previousWeekStart, &result); regenErr != nil {
			log.Errorf("failed to regenerate summary for user %s: %s", user.ID, regenErr)
			result.Error = regenErr.Error()
			errs = multierr.Append(errs, fmt.Errorf("user %s: %w", user.ID, regenErr))
		}

		results = append(results, result)
	}

	return results, errs
}

func (s *Service) regenerateForUser(
	ctx context.Context,
	userID string,
	weekStart time.Time,
	result *RegenerationResult,
) error {
	stats, err := s.computeWeek(ctx, userID, weekStart)
	if err != nil {
		return err
	}

	if stats.sessions == 0 {
		// zero-session weeks never get a row
		return nil
	}

	if _, err := s.repo.Upsert(ctx, WeeklySummary{
		UserID:         userID,
		WeekStart:      weekStart,
		Sessions:       stats.sessions,
		TotalMin:       stats.totalMin,
		TotalExercises: stats.totalExercises,
		CreatedAt:      s.now(),
	}); err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}

	s.metrics.CounterSummariesComputed.Inc()
	result.Generated = true
	return nil
}

// Monthly aggregates the weekly summaries of every ISO week overlapping
// the month. Note that totalExercises sums weekly distinct counts, an
// exercise performed in two weeks of the month counts twice.
func (s *Service) Monthly(ctx context.Context, userID string, year int, month time.Month) (_ *MonthlySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("year", year))
	span.SetAttributes(attribute.Int("month", int(month)))

	monthStart := pkg.StartOfMonth(year, month)
	monthEnd := pkg.EndOfMonth(year, month)

	summary := &MonthlySummary{
		UserID: userID,
		Year:   year,
		Month:  int(month),
	}

	var totalMin int
	for _, weekStart := range pkg.ISOWeeksInRange(monthStart, monthEnd) {
		weekly, err := s.GetOrCreateWeekly(ctx, userID, weekStart)
		if err != nil {
			return nil, err
		}
		if weekly == nil {
			continue
		}
		summary.WeeksWithData++
		summary.TotalSessions += weekly.Sessions
		summary.TotalExercises += weekly.TotalExercises
		totalMin += weekly.TotalMin
	}

	summary.TotalHours = round1(float64(totalMin) / 60)
	if summary.WeeksWithData > 0 {
		summary.AvgSessionsPerWeek = round1(
			float64(summary.TotalSessions) / float64(summary.WeeksWithData),
		)
	}

	return summary, nil
}

// Annual rolls the year up per calendar month, independent of weekly
// boundaries. Months entirely in the future are skipped unless they
// already have data.
func (s *Service) Annual(ctx context.Context, userID string, year int) (_ *AnnualSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.annual")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.Int("year", year))

	summary := &AnnualSummary{
		UserID: userID,
		Year:   year,
		Months: make([]MonthStats, 0, 12),
	}

	now := s.now()
	monthsWithData := 0
	for month := time.January; month <= time.December; month++ {
		monthStart := pkg.StartOfMonth(year, month)
		monthEnd := pkg.EndOfMonth(year, month)
		futureMonth := monthStart.After(now)

		monthStats, err := s.monthStats(ctx, userID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		if futureMonth && !monthStats.HasData {
			continue
		}

		summary.Months = append(summary.Months, *monthStats)
		summary.TotalSessions += monthStats.TotalSessions
		summary.TotalMinutes += monthStats.TotalMinutes
		summary.TotalExercises += monthStats.TotalExercises
		if monthStats.HasData {
			monthsWithData++
		}
	}

	summary.TotalHours = round1(float64(summary.TotalMinutes) / 60)
	if monthsWithData > 0 {
		summary.AverageSessionsPerMonth = round1(
			float64(summary.TotalSessions) / float64(monthsWithData),
		)
	}

	return summary, nil
}

func (s *Service) monthStats(ctx context.Context, userID string, monthStart, monthEnd time.Time) (*MonthStats, error) {
	monthSessions, err := s.sessions.List(ctx, sessions.ListParams{
		UserID: userID,
		From:   &monthStart,
		To:     &monthEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	stats := &MonthStats{
		Month:         int(monthStart.Month()),
		TotalSessions: len(monthSessions),
	}

	distinctExercises := make(map[string]struct{})
	for _, session := range monthSessions {
		stats.TotalMinutes += session.DurationMin
		for _, se := range session.Exercises {
			distinctExercises[se.ExerciseID] = struct{}{}
		}
	}
	stats.TotalExercises = len(distinctExercises)

	entries, err := s.weights.ListInRange(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	if len(entries) > 0 {
		var weightSum float64
		for _, e := range entries {
			weightSum += e.WeightKg
		}
		averageWeight := weightSum / float64(len(entries))
		stats.AverageWeightKg = &averageWeight
	}

	stats.HasData = stats.TotalSessions > 0 || len(entries) > 0
	return stats, nil
}

// SharedWeekly compares all users over the same week. It needs at
// least two users and is served from the redis cache when possible.
func (s *Service) SharedWeekly(ctx context.Context, weekStart time.Time) (_ *SharedWeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summaries.sharedweekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weekStart = pkg.StartOfISOWeek(weekStart)
	span.SetAttributes(attribute.String("week_start", weekStart.Format(time.DateOnly)))

	if cached, err := s.cache.GetSharedWeekly(ctx, weekStart); err != nil {
		log.Errorf("failed to get shared summary from cache: %s", err)
	} else if cached != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}

	allUsers, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(allUsers) < 2 {
		return nil, ErrNotEnoughUsers
	}

	summary := &SharedWeeklySummary{
		WeekStart: weekStart,
		WeekEnd:   pkg.EndOfISOWeek(weekStart),
		Users:     make([]UserWeekStats, 0, len(allUsers)),
	}

	trainingDaySets := make([]map[string]struct{}, 0, len(allUsers))
	for _, user := range allUsers {
		stats, err := s.computeWeek(ctx, user.ID, weekStart)
		if err != nil {
			return nil, fmt.Errorf("compute week for user %s: %w", user.ID, err)
		}

		summary.Users = append(summary.Users, UserWeekStats{
			UserID:         user.ID,
			UserName:       user.Name,
			Sessions:       stats.sessions,
			TotalMin:       stats.totalMin,
			TotalExercises: stats.totalExercises,
			TrainingDays:   stats.trainingDays,
		})
		summary.TotalSessions += stats.sessions
		summary.TotalMin += stats.totalMin
		summary.TotalExercises += stats.totalExercises

		daySet := make(map[string]struct{}, len(stats.trainingDays))
		for _, day := range stats.trainingDays {
			daySet[day] = struct{}{}
		}
		trainingDaySets = append(trainingDaySets, daySet)
	}

	summary.SameDays = intersectionSize(trainingDaySets)
	// out of a fixed 7-day week, not out of days either user trained
	summary.SameDayPercentage = int(round0(float64(summary.SameDays) / 7 * 100))

	if err := s.cache.SetSharedWeekly(ctx, summary); err != nil {
		log.Errorf("failed to cache shared summary: %s", err)
	}

	return summary, nil
}

func intersectionSize(daySets []map[string]struct{}) int {
	if len(daySets) == 0 {
		return 0
	}

	size := 0
	for day := range daySets[0] {
		inAll := true
		for _, other := range daySets[1:] {
			if _, ok := other[day]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			size++
		}
	}
	return size
}
