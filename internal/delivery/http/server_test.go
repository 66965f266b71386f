package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealplan/config"
	"mealplan/internal/delivery/http/response"
	"mealplan/internal/delivery/http/router"
	"mealplan/internal/delivery/http/router/handler"
	"mealplan/internal/domain/entity"
	"mealplan/internal/infra/persistence/gormdb"
	"mealplan/internal/infra/pubsub"
	"mealplan/internal/planner/generator"
	"mealplan/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0b7f5d8e-3c1a-4e2b-9f6d-7a8b9c0d1e2f"

type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Planner = config.PlannerConfig{DefaultMode: "speed", WeekWorkers: 2, MaxWeekDays: 7}

	db, err := gormdb.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	txManager := gormdb.NewTransactionManager(db)
	gen, err := impl.NewGenerator(cfg, logger)
	require.NoError(t, err)

	profileSvc := impl.NewProfileService(txManager, logger)
	plannerSvc := impl.NewPlannerService(txManager, gen, pubsub.NewNoopPublisher(logger), logger)
	catalogSvc := impl.NewCatalogService(txManager, logger)

	return NewEcho(cfg, logger, router.RouterParams{
		ProfileHandler: handler.NewProfileHandler(profileSvc, logger),
		PlanHandler:    handler.NewPlanHandler(plannerSvc, logger),
		CatalogHandler: handler.NewCatalogHandler(catalogSvc, logger),
	})
}

func do(t *testing.T, e *echo.Echo, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func seedCatalog() *entity.Catalog {
	return &entity.Catalog{
		Recipes: []entity.Recipe{
			{ID: "r-oats", Name: "Overnight Oats", Categories: []string{"Breakfast"}, PrepTime: 10, Calories: 420, Protein: 18, Carbs: 60, Fat: 12},
			{ID: "r-bowl", Name: "Chicken Quinoa Bowl", Categories: []string{"Lunch"}, PrepTime: 15, CookTime: 20, Calories: 620, Protein: 45, Carbs: 65, Fat: 18},
			{ID: "r-salmon", Name: "Baked Salmon", Categories: []string{"Dinner"}, PrepTime: 10, CookTime: 25, Calories: 580, Protein: 42, Carbs: 30, Fat: 30},
			{ID: "r-hummus", Name: "Hummus Plate", Categories: []string{"Snack"}, PrepTime: 5, Calories: 220, Protein: 8, Carbs: 24, Fat: 10},
		},
		Foods: []entity.Food{
			{ID: "f-apple", Name: "Apple", Category: "Fruits", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
		},
	}
}

func seedProfile() map[string]any {
	return map[string]any{
		"name":               "Test User",
		"age":                30,
		"gender":             "male",
		"heightCm":           180,
		"weightKg":           80,
		"activityMultiplier": 1.55,
		"fitnessGoal":        "Maintenance",
		"tdci":               map[string]any{"adjustedTDCI": 2000},
		"mealPreferences":    map[string]any{"snackPositions": []string{string(entity.SnackBetweenLunchDinner)}},
		"avoidMeals":         map[string]any{},
	}
}

func TestAPI_HealthCheck(t *testing.T) {
	e := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAPI_GeneratePersistAndRead(t *testing.T) {
	e := newTestAPI(t)
	profilePath := "/api/v1/profiles/" + testUserID

	code, env := do(t, e, http.MethodPost, "/api/v1/catalog/import", seedCatalog())
	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.JSONEq(t, `{"recipes":4,"foods":1}`, string(env.Data))

	code, env = do(t, e, http.MethodGet, "/api/v1/catalog/recipes", nil)
	require.Equal(t, http.StatusOK, code)
	var recipes []entity.Recipe
	require.NoError(t, json.Unmarshal(env.Data, &recipes))
	assert.Len(t, recipes, 4)

	code, env = do(t, e, http.MethodPut, profilePath, seedProfile())
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = do(t, e, http.MethodGet, profilePath, nil)
	require.Equal(t, http.StatusOK, code)
	var profile entity.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, testUserID, profile.ID.String())
	assert.Equal(t, entity.GenderMale, profile.Gender)

	code, env = do(t, e, http.MethodGet, profilePath+"/validation", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"readyToGenerate":true`)

	code, env = do(t, e, http.MethodGet, profilePath+"/targets?date=2026-03-02", nil)
	require.Equal(t, http.StatusOK, code)
	var targets struct {
		Date  string                         `json:"date"`
		Meals []entity.MealNutritionalTarget `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &targets))
	assert.Equal(t, "2026-03-02", targets.Date)
	assert.Len(t, targets.Meals, 4)

	code, env = do(t, e, http.MethodPost, profilePath+"/plans", map[string]any{
		"date":    "2026-03-02",
		"mode":    "speed",
		"persist": true,
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	var result generator.GenerationResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.True(t, result.Success)
	require.NotNil(t, result.MealPlan)
	assert.Len(t, result.MealPlan.Meals, 4)

	code, env = do(t, e, http.MethodGet, profilePath+"/plans/2026-03-02", nil)
	require.Equal(t, http.StatusOK, code)
	var stored entity.MealPlan
	require.NoError(t, json.Unmarshal(env.Data, &stored))
	assert.Equal(t, result.MealPlan.ID, stored.ID)
	assert.Len(t, stored.Meals, 4)

	code, env = do(t, e, http.MethodGet, profilePath+"/plans?from=2026-03-01&to=2026-03-07", nil)
	require.Equal(t, http.StatusOK, code)
	var plans []*entity.MealPlan
	require.NoError(t, json.Unmarshal(env.Data, &plans))
	assert.Len(t, plans, 1)

	code, env = do(t, e, http.MethodPost, profilePath+"/plans/week", map[string]any{
		"startDate": "2026-03-03",
		"days":      3,
		"mode":      "speed",
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	var week generator.GenerationResult
	require.NoError(t, json.Unmarshal(env.Data, &week))
	assert.Len(t, week.WeekPlan, 3)

	code, env = do(t, e, http.MethodPost, "/api/v1/plans/estimate", map[string]any{"mode": "speed"})
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"catalogSize":5`)
}

func TestAPI_ErrorEnvelopes(t *testing.T) {
	e := newTestAPI(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown profile",
			method:   http.MethodGet,
			path:     "/api/v1/profiles/" + testUserID,
			wantCode: http.StatusNotFound,
			wantErr:  "PROFILE_NOT_FOUND",
		},
		{
			name:     "malformed user id",
			method:   http.MethodGet,
			path:     "/api/v1/profiles/not-a-uuid",
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "missing plan",
			method:   http.MethodGet,
			path:     "/api/v1/profiles/" + testUserID + "/plans/2026-03-02",
			wantCode: http.StatusNotFound,
			wantErr:  "MEAL_PLAN_NOT_FOUND",
		},
		{
			name:     "malformed plan date",
			method:   http.MethodGet,
			path:     "/api/v1/profiles/" + testUserID + "/plans/03-02-2026",
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_DATE",
		},
		{
			name:     "unknown mode",
			method:   http.MethodPost,
			path:     "/api/v1/plans/estimate",
			body:     map[string]any{"mode": "turbo"},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_MODE",
		},
		{
			name:   "repeated snack position",
			method: http.MethodPut,
			path:   "/api/v1/profiles/" + testUserID,
			body: func() map[string]any {
				p := seedProfile()
				p["mealPreferences"] = map[string]any{"snackPositions": []string{
					string(entity.SnackAfterDinner),
					string(entity.SnackAfterDinner),
				}}

				return p
			}(),
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "negative days",
			method:   http.MethodPost,
			path:     "/api/v1/plans/estimate",
			body:     map[string]any{"days": -1},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "invalid catalog",
			method:   http.MethodPost,
			path:     "/api/v1/catalog/import",
			body:     map[string]any{"recipes": []map[string]any{{"id": "r-1", "name": "Bad", "calories": -10}}},
			wantCode: http.StatusBadRequest,
			wantErr:  "CATALOG_IMPORT_FAILED",
		},
		{
			name:     "unknown route",
			method:   http.MethodGet,
			path:     "/api/v1/nothing",
			wantCode: http.StatusNotFound,
			wantErr:  "HTTP_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, e, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}
