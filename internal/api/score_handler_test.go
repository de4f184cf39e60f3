package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScoreHandler_CalculateDay(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleAthlete, time.Hour)

	t.Run("stores and returns the score", func(t *testing.T) {
		scores := &fakeScoreService{
			CalculateDayFunc: func(ctx context.Context, gotUser primitive.ObjectID, date string) (*domain.NutritionScore, error) {
				assert.Equal(t, userID, gotUser)
				assert.Equal(t, "2025-03-01", date)
				return &domain.NutritionScore{UserID: gotUser, Date: date, Score: 82, Load: scoring.LoadModerate}, nil
			},
		}
		router := newTestRouter(Services{Score: scores})

		rec := doRequest(t, router, http.MethodPost, "/api/v1/scores/2025-03-01/calculate", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.NutritionScore
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 82, got.Score)
		assert.Equal(t, scoring.LoadModerate, got.Load)
	})

	t.Run("missing plan is 404", func(t *testing.T) {
		scores := &fakeScoreService{
			CalculateDayFunc: func(ctx context.Context, _ primitive.ObjectID, date string) (*domain.NutritionScore, error) {
				return nil, fmt.Errorf("calculate %s: %w", date, service.ErrMealPlanNotFound)
			},
		}
		router := newTestRouter(Services{Score: scores})

		rec := doRequest(t, router, http.MethodPost, "/api/v1/scores/2025-03-01/calculate", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		scores := &fakeScoreService{
			CalculateDayFunc: func(context.Context, primitive.ObjectID, string) (*domain.NutritionScore, error) {
				return nil, errors.New("mongo: server selection timeout")
			},
		}
		router := newTestRouter(Services{Score: scores})

		rec := doRequest(t, router, http.MethodPost, "/api/v1/scores/2025-03-01/calculate", token, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to calculate score.", decodeError(t, rec))
	})
}

func TestScoreHandler_Weekly(t *testing.T) {
	userID := primitive.NewObjectID()
	token := signToken(t, userID, domain.RoleAthlete, time.Hour)

	var gotEnd string
	scores := &fakeScoreService{
		WeeklyFunc: func(ctx context.Context, _ primitive.ObjectID, end string) (*service.WeeklySummary, error) {
			gotEnd = end
			return &service.WeeklySummary{From: "2025-02-23", To: end, WeeklyTotal: 240, DaysCounted: 3}, nil
		},
	}
	router := newTestRouter(Services{Score: scores})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores/weekly?end=2025-03-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-03-01", gotEnd)

	var got service.WeeklySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 240, got.WeeklyTotal)
	assert.Equal(t, 3, got.DaysCounted)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/scores/weekly", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FormatDate(time.Now()), gotEnd)
}

func TestScoreHandler_GetRange(t *testing.T) {
	token := signToken(t, primitive.NewObjectID(), domain.RoleAthlete, time.Hour)
	scores := &fakeScoreService{
		GetRangeFunc: func(context.Context, primitive.ObjectID, string, string) ([]domain.NutritionScore, error) {
			return nil, nil
		},
	}
	router := newTestRouter(Services{Score: scores})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/scores?from=2025-03-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/scores?from=2025-03-01&to=2025-03-07", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestScoreHandler_Preview(t *testing.T) {
	token := signToken(t, primitive.NewObjectID(), domain.RoleAthlete, time.Hour)

	t.Run("unknown load is 400", func(t *testing.T) {
		scores := &fakeScoreService{
			PreviewFunc: func(input scoring.Context) (scoring.Result, error) {
				return scoring.Result{}, fmt.Errorf("%w: %q", scoring.ErrUnknownLoad, input.Target.Load)
			},
		}
		router := newTestRouter(Services{Score: scores})

		body := map[string]any{"target": map[string]any{"load": "tempo"}}
		rec := doRequest(t, router, http.MethodPost, "/api/v1/scores/preview", token, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "unknown training load")
	})

	t.Run("returns the breakdown", func(t *testing.T) {
		scores := &fakeScoreService{
			PreviewFunc: func(input scoring.Context) (scoring.Result, error) {
				assert.Equal(t, scoring.LoadRest, input.Target.Load)
				assert.InDelta(t, 2000, input.Target.Macros.Calories, 0.001)
				return scoring.Result{Score: 100, Load: input.Target.Load}, nil
			},
		}
		router := newTestRouter(Services{Score: scores})

		body := map[string]any{"target": map[string]any{"load": "rest", "macros": map[string]any{"calories": 2000}}}
		rec := doRequest(t, router, http.MethodPost, "/api/v1/scores/preview", token, body)
		require.Equal(t, http.StatusOK, rec.Code)

		var got scoring.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 100, got.Score)
	})
}

func TestCoachHandler_GetAthleteWeekly(t *testing.T) {
	coachID := primitive.NewObjectID()
	athleteID := primitive.NewObjectID()
	token := signToken(t, coachID, domain.RoleCoach, time.Hour)

	coach := &fakeCoachService{
		GetAthleteWeeklyFunc: func(ctx context.Context, gotCoach, gotAthlete primitive.ObjectID, end string) (*service.WeeklySummary, error) {
			assert.Equal(t, coachID, gotCoach)
			if gotAthlete != athleteID {
				return nil, service.ErrAthleteNotManaged
			}
			return &service.WeeklySummary{To: end, WeeklyTotal: 500, DaysCounted: 6}, nil
		},
	}
	router := newTestRouter(Services{Coach: coach})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/coach/athletes/"+athleteID.Hex()+"/scores/weekly?end=2025-03-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/coach/athletes/"+primitive.NewObjectID().Hex()+"/scores/weekly", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/coach/athletes/not-an-id/scores/weekly", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
