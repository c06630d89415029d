package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	httpH "github.com/yungbote/civic-innovation-backend/internal/http/handlers"
	"github.com/yungbote/civic-innovation-backend/internal/invocation"
	"github.com/yungbote/civic-innovation-backend/internal/observability"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/localization"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/modules"
	"github.com/yungbote/civic-innovation-backend/internal/prompts/registry"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func newTestRouter(inv invocation.Invoker) *gin.Engine {
	log := logger.NewNop()
	p := localization.Default()
	lib := modules.NewLibrary(p)
	reg := registry.New(registry.DefaultCatalog())
	svc := invocation.NewService(log, builder.New(p), lib, inv, nil)

	return NewRouter(RouterConfig{
		Log:           log,
		ServiceName:   "civic-innovation-test",
		HealthHandler: httpH.NewHealthHandler("test"),
		PromptHandler: httpH.NewPromptHandler(log, reg, lib, svc, nil),
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	env, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error envelope: %v", body)
	code, _ := env["code"].(string)
	return code
}

func TestHealthcheck(t *testing.T) {
	rec, body := do(t, newTestRouter(nil), http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCategoriesEndpoints(t *testing.T) {
	r := newTestRouter(nil)

	rec, body := do(t, r, http.MethodGet, "/api/prompts/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, registry.DefaultCatalog().Len(), body["count"])

	rec, body = do(t, r, http.MethodGet, "/api/prompts/categories/sandbox", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sandbox", body["name"])
	assert.EqualValues(t, 4, body["promptCount"])
	mods, _ := body["modules"].([]any)
	require.Len(t, mods, 1)
	assert.Equal(t, map[string]any{"category": "sandbox", "name": "applicationEvaluation"}, mods[0])

	rec, body = do(t, r, http.MethodGet, "/api/prompts/categories/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "category_not_found", errorCode(t, body))
}

func TestSearchStatsRecommend(t *testing.T) {
	r := newTestRouter(nil)

	_, body := do(t, r, http.MethodGet, "/api/prompts/search?q=SAND", nil)
	results, _ := body["results"].([]any)
	require.Len(t, results, 1)

	_, body = do(t, r, http.MethodGet, "/api/prompts/search?q=zzz", nil)
	assert.Equal(t, []any{}, body["results"])

	rec, body := do(t, r, http.MethodGet, "/api/prompts/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "bySize")
	assert.Equal(t, "centralized-prompts", body["phase"])

	_, body = do(t, r, http.MethodGet, "/api/prompts/recommend?use_case=engagement+hub", nil)
	recs, _ := body["recommendations"].([]any)
	require.NotEmpty(t, recs)
	first, _ := recs[0].(map[string]any)
	assert.Equal(t, "engagementHub", first["name"])
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	_, body := do(t, r, http.MethodPost, "/api/prompts/validate", map[string]any{
		"required": []string{"title", "budget"},
		"context":  map[string]any{"title": "x", "budget": 0},
	})
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, []any{"budget"}, body["missing"])
	assert.Equal(t, "Missing required fields: budget", body["message"])

	_, body = do(t, r, http.MethodPost, "/api/prompts/validate", map[string]any{
		"module":  "challenges/challengeDescription",
		"context": map[string]any{"title": "Leaks", "municipality": "Riyadh"},
	})
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, []any{}, body["missing"])

	rec, body := do(t, r, http.MethodPost, "/api/prompts/validate", map[string]any{"module": "challenges/nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, body))
}

func TestPreviewEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	rec, body := do(t, r, http.MethodPost, "/api/prompts/preview", map[string]any{
		"module":   "pilots/successPrediction",
		"context":  map[string]any{"pilot": map[string]any{"name": "Smart bins"}},
		"mode":     "saudi",
		"language": "ar",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, body["prompt"], "- Language: Arabic (formal MSA)")
	assert.NotEmpty(t, body["system_prompt"])
	assert.Contains(t, body, "response_json_schema")
	assert.Len(t, body["fingerprint"], 64)

	rec, body = do(t, r, http.MethodPost, "/api/prompts/preview", map[string]any{
		"module": "pilots/successPrediction",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_argument", errorCode(t, body))

	rec, _ = do(t, r, http.MethodPost, "/api/prompts/preview", map[string]any{"module": "no-slash"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = do(t, r, http.MethodPost, "/api/prompts/preview", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorCode(t, body))
}

func TestInvokeEndpoint(t *testing.T) {
	reqBody := map[string]any{
		"module":  "events/eventRecommendations",
		"context": map[string]any{"interests": []string{"mobility"}},
	}

	rec, body := do(t, newTestRouter(nil), http.MethodPost, "/api/prompts/invoke", reqBody)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", errorCode(t, body))

	var got builder.Payload
	inv := invocation.InvokerFunc(func(_ context.Context, p builder.Payload) (invocation.Result, error) {
		got = p
		return invocation.Result{Success: true, Data: map[string]any{"events": []any{"Smart Mobility Forum"}}}, nil
	})
	rec, body = do(t, newTestRouter(inv), http.MethodPost, "/api/prompts/invoke", reqBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Contains(t, got.Prompt, "INTERESTS: mobility")
	assert.Nil(t, got.ResponseJSONSchema)
}

func TestMetricsRoute(t *testing.T) {
	m := observability.Init(nil, true)
	r := NewRouter(RouterConfig{Metrics: m, HealthHandler: httpH.NewHealthHandler("test")})

	do(t, r, http.MethodGet, "/healthcheck", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/healthcheck"`)
}

func TestServerRunStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", RouterConfig{HealthHandler: httpH.NewHealthHandler("test")})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Second) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
