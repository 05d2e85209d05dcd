package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutriplan/backend/internal/mocks"
	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/planner"
	"github.com/pageza/nutriplan/backend/internal/service"
	"github.com/pageza/nutriplan/backend/internal/types"
)

func setupRouter(t *testing.T, streamer service.CompletionStreamer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := options.LoadCatalog()
	require.NoError(t, err)

	router := gin.New()
	RegisterRoutes(router, streamer, catalog, nil)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateStreamsDeltas(t *testing.T) {
	streamer := new(mocks.MockCompletionStreamer)
	streamer.On("StreamCompletion", mock.Anything, "plan please").
		Return(mocks.Deltas("<h4>B", "reakfast</h4>", "<ul><li>Eggs</li></ul>"), nil)

	w := post(setupRouter(t, streamer), "/api/generate", `{"prompt":"plan please"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<h4>Breakfast</h4><ul><li>Eggs</li></ul>", w.Body.String())
	assert.True(t, w.Flushed)
	streamer.AssertExpectations(t)
}

func TestGenerateMissingPrompt(t *testing.T) {
	streamer := new(mocks.MockCompletionStreamer)
	router := setupRouter(t, streamer)

	for _, body := range []string{`{}`, `{"prompt":""}`, ``, `not json`} {
		w := post(router, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, MissingPromptMessage, w.Body.String(), body)
	}
	streamer.AssertNotCalled(t, "StreamCompletion", mock.Anything, mock.Anything)
}

func TestGenerateProviderFailure(t *testing.T) {
	streamer := new(mocks.MockCompletionStreamer)
	streamer.On("StreamCompletion", mock.Anything, "p").
		Return(nil, &service.ProviderError{StatusCode: http.StatusUnauthorized, Body: "invalid api key"})

	w := post(setupRouter(t, streamer), "/api/generate", `{"prompt":"p"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "invalid api key")
}

func TestGenerateStreamErrorDiscardsPartialPlan(t *testing.T) {
	streamer := new(mocks.MockCompletionStreamer)
	streamer.On("StreamCompletion", mock.Anything, mock.Anything).
		Return(mocks.FailingDeltas(errors.New("provider connection reset"), "<h4>Breakfast</h4><ul><li>Eg"), nil)

	server := httptest.NewServer(setupRouter(t, streamer))
	defer server.Close()

	controller := planner.NewController(planner.NewClient(server.URL, nil))
	defer controller.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, controller.Submit(ctx))
	require.NoError(t, controller.Wait(ctx))

	snap := controller.Snapshot()
	assert.Empty(t, snap.Text)
	assert.False(t, snap.Loading)
	assert.Equal(t, planner.NoticeError, snap.Notice.Kind)

	var readErr *planner.StreamReadError
	assert.ErrorAs(t, snap.Notice.Err, &readErr)

	_, err := controller.Markdown()
	assert.ErrorIs(t, err, planner.ErrNotReady)
}

func TestPlanBuildsPrompt(t *testing.T) {
	profile := types.DefaultProfile()
	body, err := json.Marshal(types.PlanRequest{Profile: profile, Language: "French", Vibe: "I want to gain muscle"})
	require.NoError(t, err)

	want := service.BuildPrompt(profile, "French", "I want to gain muscle")
	streamer := new(mocks.MockCompletionStreamer)
	streamer.On("StreamCompletion", mock.Anything, want).Return(mocks.Deltas("<h4>Plan</h4>"), nil)

	w := post(setupRouter(t, streamer), "/api/plan", string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h4>Plan</h4>", w.Body.String())
	streamer.AssertExpectations(t)
}

func TestPlanRejectsBadDates(t *testing.T) {
	streamer := new(mocks.MockCompletionStreamer)

	w := post(setupRouter(t, streamer), "/api/plan", `{"profile":{"from":"31/12/2024"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date")
}
