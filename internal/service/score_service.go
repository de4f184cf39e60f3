package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"nutrisync/nutrisync-app/internal/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrScoreNotFound    = errors.New("score not found for this date")
)

// maxRangeDays bounds range queries and batch recalculation.
const maxRangeDays = 366

// ScoreSettings tunes streak detection.
type ScoreSettings struct {
	StreakMinScore     int
	StreakLookbackDays int
}

// DailyPoint is one day of a weekly summary. Score is nil when the day has
// no stored score.
type DailyPoint struct {
	Date  string `json:"date"`
	Score *int   `json:"score"`
}

// WeeklySummary is the seven days ending at To. WeeklyTotal is the sum of
// the stored daily scores, not an average.
type WeeklySummary struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	WeeklyTotal int          `json:"weeklyTotal"`
	DaysCounted int          `json:"daysCounted"`
	Days        []DailyPoint `json:"days"`
}

// RecalcReport counts the outcome of a batch recalculation.
type RecalcReport struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

type ScoreService interface {
	CalculateDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error)
	GetDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error)
	GetRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error)
	Weekly(ctx context.Context, userID primitive.ObjectID, end string) (*WeeklySummary, error)
	Preview(input scoring.Context) (scoring.Result, error)
	RecalculateRange(ctx context.Context, from, to string) (RecalcReport, error)
}

// --- Service Implementation ---

type scoreService struct {
	userRepo     repository.UserRepository
	mealPlanRepo repository.MealPlanRepository
	foodLogRepo  repository.FoodLogRepository
	activityRepo repository.TrainingActivityRepository
	scoreRepo    repository.NutritionScoreRepository
	settings     ScoreSettings
	now          func() time.Time
}

// NewScoreService creates a new instance of scoreService.
func NewScoreService(
	userRepo repository.UserRepository,
	mealPlanRepo repository.MealPlanRepository,
	foodLogRepo repository.FoodLogRepository,
	activityRepo repository.TrainingActivityRepository,
	scoreRepo repository.NutritionScoreRepository,
	settings ScoreSettings,
) ScoreService {
	if settings.StreakLookbackDays <= 0 {
		settings.StreakLookbackDays = 30
	}
	return &scoreService{
		userRepo:     userRepo,
		mealPlanRepo: mealPlanRepo,
		foodLogRepo:  foodLogRepo,
		activityRepo: activityRepo,
		scoreRepo:    scoreRepo,
		settings:     settings,
		now:          time.Now,
	}
}

// CalculateDay scores one athlete-day from the stored plan, food logs and
// activities, and upserts the result.
func (s *scoreService) CalculateDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	plan, err := s.mealPlanRepo.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, fmt.Errorf("loading meal plan: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	logs, err := s.foodLogRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("loading food logs: %w", err)
	}
	activities, err := s.activityRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("loading training activities: %w", err)
	}

	// Windows reaching into the previous or next day need that day's intake too.
	var windowLogs []domain.FoodLog
	if from, to, ok := WindowBounds(plan, activities); ok && (from.Before(day) || to.After(day.AddDate(0, 0, 1))) {
		windowLogs, err = s.foodLogRepo.GetByEatenBetween(ctx, userID, from, to)
		if err != nil {
			return nil, fmt.Errorf("loading window food logs: %w", err)
		}
		if windowLogs == nil {
			windowLogs = []domain.FoodLog{}
		}
	}
	streak, err := s.streakBefore(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("loading streak: %w", err)
	}

	input := BuildScoringContext(DayInputs{
		Plan:         plan,
		Logs:         logs,
		Activities:   activities,
		StreakDays:   streak,
		MaxHeartRate: user.MaxHeartRate,
		WindowLogs:   windowLogs,
	})
	result, err := scoring.DailyScore(input)
	if err != nil {
		return nil, err
	}

	score := &domain.NutritionScore{
		UserID:       userID,
		Date:         date,
		Score:        result.Score,
		Load:         result.Load,
		Breakdown:    result,
		Flags:        input.Flags,
		CalculatedAt: s.now().UTC(),
	}
	if err = s.scoreRepo.Upsert(ctx, score); err != nil {
		return nil, fmt.Errorf("storing score: %w", err)
	}
	return score, nil
}

// streakBefore counts consecutive days immediately before day whose stored
// score reached the streak threshold.
func (s *scoreService) streakBefore(ctx context.Context, userID primitive.ObjectID, day time.Time) (int, error) {
	from := domain.FormatDate(day.AddDate(0, 0, -s.settings.StreakLookbackDays))
	to := domain.FormatDate(day.AddDate(0, 0, -1))
	scores, err := s.scoreRepo.GetRange(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}

	byDate := make(map[string]int, len(scores))
	for _, sc := range scores {
		byDate[sc.Date] = sc.Score
	}
	streak := 0
	for d := day.AddDate(0, 0, -1); streak < s.settings.StreakLookbackDays; d = d.AddDate(0, 0, -1) {
		v, ok := byDate[domain.FormatDate(d)]
		if !ok || v < s.settings.StreakMinScore {
			break
		}
		streak++
	}
	return streak, nil
}

func (s *scoreService) GetDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	score, err := s.scoreRepo.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScoreNotFound
		}
		return nil, err
	}
	return score, nil
}

// parseRange validates an inclusive [from, to] day range.
func parseRange(from, to string) (time.Time, time.Time, error) {
	f, err := domain.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	t, err := domain.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if t.Before(f) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from is after to", ErrInvalidDateRange)
	}
	if days := int(t.Sub(f).Hours()/24) + 1; days > maxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: at most %d days", ErrInvalidDateRange, maxRangeDays)
	}
	return f, t, nil
}

func (s *scoreService) GetRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error) {
	if _, _, err := parseRange(from, to); err != nil {
		return nil, err
	}
	return s.scoreRepo.GetRange(ctx, userID, from, to)
}

// Weekly sums the stored scores of the seven days ending at end.
func (s *scoreService) Weekly(ctx context.Context, userID primitive.ObjectID, end string) (*WeeklySummary, error) {
	endDay, err := domain.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	startDay := endDay.AddDate(0, 0, -(scoring.WeekDays - 1))
	summary := &WeeklySummary{From: domain.FormatDate(startDay), To: end}

	scores, err := s.scoreRepo.GetRange(ctx, userID, summary.From, summary.To)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int, len(scores))
	for _, sc := range scores {
		byDate[sc.Date] = sc.Score
	}

	values := make([]float64, 0, scoring.WeekDays)
	for _, d := range domain.DateRange(startDay, endDay) {
		point := DailyPoint{Date: d}
		if v, ok := byDate[d]; ok {
			point.Score = &v
			values = append(values, float64(v))
		}
		summary.Days = append(summary.Days, point)
	}
	summary.WeeklyTotal = scoring.WeeklyScore(values)
	summary.DaysCounted = len(values)
	return summary, nil
}

// Preview scores a caller-supplied context without touching storage.
func (s *scoreService) Preview(input scoring.Context) (scoring.Result, error) {
	return scoring.DailyScore(input)
}

// RecalculateRange rescores every athlete-day in [from, to] that has a meal
// plan. Days are processed oldest first so streaks build on fresh scores.
// Individual failures are logged and counted.
func (s *scoreService) RecalculateRange(ctx context.Context, from, to string) (RecalcReport, error) {
	var report RecalcReport
	if _, _, err := parseRange(from, to); err != nil {
		return report, err
	}

	athleteIDs, err := s.userRepo.ListAthleteIDs(ctx)
	if err != nil {
		return report, fmt.Errorf("listing athletes: %w", err)
	}

	for _, userID := range athleteIDs {
		dates, err := s.mealPlanRepo.ListDates(ctx, userID, from, to)
		if err != nil {
			log.Printf("ERROR: Listing plan dates for user %s: %v", userID.Hex(), err)
			report.Failed++
			continue
		}
		for _, date := range dates {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if _, err := s.CalculateDay(ctx, userID, date); err != nil {
				log.Printf("ERROR: Recalculating %s for user %s: %v", date, userID.Hex(), err)
				report.Failed++
				continue
			}
			report.Processed++
		}
	}
	// cancelled while scoring the last day
	if err := ctx.Err(); err != nil {
		return report, err
	}
	log.Printf("INFO: Recalculated scores %s..%s: %d processed, %d failed", from, to, report.Processed, report.Failed)
	return report, nil
}
