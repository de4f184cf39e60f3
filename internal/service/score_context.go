package service

import (
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/nutrition"
	"nutrisync/nutrisync-app/internal/scoring"
	"time"
)

const (
	defaultPreWindowMinutes  = 120
	defaultPostWindowMinutes = 60
)

// DayInputs is everything stored about one athlete-day that feeds the score.
type DayInputs struct {
	Plan       *domain.DailyMealPlan
	Logs       []domain.FoodLog
	Activities []domain.TrainingActivity
	StreakDays int

	// MaxHeartRate is the athlete's current profile value, 0 when unknown.
	MaxHeartRate float64
	// WindowLogs, when set, replaces Logs for fueling-window intake so
	// windows crossing midnight see the neighbouring day.
	WindowLogs []domain.FoodLog
}

// sessionSpan is the interval the fueling windows are placed around.
type sessionSpan struct {
	start time.Time
	end   time.Time
}

func (s sessionSpan) hours() float64 {
	return s.end.Sub(s.start).Hours()
}

// BuildScoringContext turns stored rows into the calculator input. Windows are
// anchored on the recorded activities when there are any, otherwise on the
// planned session; without either no window applies.
func BuildScoringContext(in DayInputs) scoring.Context {
	plan := in.Plan
	ctx := scoring.Context{
		Target: scoring.DayTarget{
			Load:       plan.Load,
			Macros:     nutrition.SumTargets(plan.Meals),
			MinFatKcal: plan.MinFatKcal,
		},
		Actual: scoring.DayActual{
			Macros:         nutrition.SumActuals(in.Logs),
			Meals:          nutrition.MealTypes(in.Logs),
			CaloriesByMeal: nutrition.CaloriesByMeal(in.Logs),
		},
		Flags: scoring.Flags{
			StreakDays:   in.StreakDays,
			HydrationMet: plan.HydrationTargetMl > 0 && nutrition.Water(in.Logs) >= plan.HydrationTargetMl,
		},
	}

	ctx.Training = trainingContext(plan.Session, in.Activities, in.MaxHeartRate)
	if span, ok := anchorSession(plan.Session, in.Activities); ok {
		windowLogs := in.WindowLogs
		if windowLogs == nil {
			windowLogs = in.Logs
		}
		ctx.Windows = fuelingWindows(plan.Fueling, span, windowLogs)
	}
	return ctx
}

// primaryActivity is the longest recorded session of the day.
func primaryActivity(activities []domain.TrainingActivity) *domain.TrainingActivity {
	var best *domain.TrainingActivity
	for i := range activities {
		if best == nil || activities[i].DurationMinutes > best.DurationMinutes {
			best = &activities[i]
		}
	}
	return best
}

// activityZone re-derives the zone from the current max HR when possible and
// falls back to the zone stored with the activity.
func activityZone(a *domain.TrainingActivity, maxHeartRate float64) int {
	if zone := scoring.ZoneForHeartRate(a.AvgHeartRate, maxHeartRate); zone > 0 {
		return zone
	}
	return a.Intensity
}

func trainingContext(planned *domain.PlannedSession, activities []domain.TrainingActivity, maxHeartRate float64) scoring.TrainingContext {
	var t scoring.TrainingContext
	if planned != nil {
		t.PlannedMinutes = planned.DurationMinutes
		t.PlannedType = planned.Type
		t.PlannedIntensity = planned.Intensity
	}
	for _, a := range activities {
		t.ActualMinutes += a.DurationMinutes
	}
	if longest := primaryActivity(activities); longest != nil {
		t.ActualType = longest.Type
		t.ActualIntensity = activityZone(longest, maxHeartRate)
		// heart rate without a usable zone is scored as no heart rate
		t.HasHeartRate = longest.HasHeartRate() && t.ActualIntensity > 0
	}
	return t
}

func anchorSession(planned *domain.PlannedSession, activities []domain.TrainingActivity) (sessionSpan, bool) {
	if len(activities) > 0 {
		span := sessionSpan{start: activities[0].StartTime, end: activities[0].End()}
		for _, a := range activities[1:] {
			if a.StartTime.Before(span.start) {
				span.start = a.StartTime
			}
			if a.End().After(span.end) {
				span.end = a.End()
			}
		}
		return span, true
	}
	if planned != nil && !planned.Start.IsZero() {
		end := planned.Start.Add(time.Duration(planned.DurationMinutes * float64(time.Minute)))
		return sessionSpan{start: planned.Start, end: end}, true
	}
	return sessionSpan{}, false
}

func preWindow(f domain.FuelingTargets) time.Duration {
	mins := f.PreWindowMinutes
	if mins <= 0 {
		mins = defaultPreWindowMinutes
	}
	return time.Duration(mins) * time.Minute
}

func postWindow(f domain.FuelingTargets) time.Duration {
	mins := f.PostWindowMinutes
	if mins <= 0 {
		mins = defaultPostWindowMinutes
	}
	return time.Duration(mins) * time.Minute
}

// WindowBounds is the interval covered by the day's fueling windows, from the
// start of the pre window to the end of the post window. ok is false when no
// session anchors the windows.
func WindowBounds(plan *domain.DailyMealPlan, activities []domain.TrainingActivity) (from, to time.Time, ok bool) {
	span, ok := anchorSession(plan.Session, activities)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return span.start.Add(-preWindow(plan.Fueling)), span.end.Add(postWindow(plan.Fueling)), true
}

func fuelingWindows(f domain.FuelingTargets, span sessionSpan, logs []domain.FoodLog) scoring.Windows {
	var w scoring.Windows

	if f.PreCarbs > 0 {
		pre := nutrition.IntakeBetween(logs, span.start.Add(-preWindow(f)), span.start)
		w.Pre = scoring.PreWindow{Applicable: true, TargetCarbs: f.PreCarbs, ActualCarbs: pre.Carbs}
	}

	if f.DuringCarbsPerHour > 0 && span.hours() > 0 {
		during := nutrition.IntakeBetween(logs, span.start, span.end)
		w.During = scoring.DuringWindow{
			Applicable:         true,
			TargetCarbsPerHour: f.DuringCarbsPerHour,
			ActualCarbsPerHour: during.Carbs / span.hours(),
		}
	}

	if f.PostCarbs > 0 || f.PostProtein > 0 {
		post := nutrition.IntakeBetween(logs, span.end, span.end.Add(postWindow(f)))
		w.Post = scoring.PostWindow{
			Applicable:    true,
			TargetCarbs:   f.PostCarbs,
			TargetProtein: f.PostProtein,
			ActualCarbs:   post.Carbs,
			ActualProtein: post.Protein,
		}
	}
	return w
}
