package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/nutriplan/backend/internal/mocks"
)

const exportBody = `{"html":"<h4>Breakfast</h4><ul><li>Eggs</li></ul>"}`

func TestExportMarkdown(t *testing.T) {
	router := setupRouter(t, new(mocks.MockCompletionStreamer))

	w := post(router, "/api/plan/export", exportBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "### Breakfast- Eggs", w.Body.String())

	w = post(router, "/api/plan/export?format=markdown", exportBody)
	assert.Equal(t, "### Breakfast- Eggs", w.Body.String())
}

func TestExportPlainTextDownload(t *testing.T) {
	router := setupRouter(t, new(mocks.MockCompletionStreamer))

	w := post(router, "/api/plan/export?format=text", exportBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="plan.txt"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "BreakfastEggs", w.Body.String())
}

func TestExportErrors(t *testing.T) {
	router := setupRouter(t, new(mocks.MockCompletionStreamer))

	w := post(router, "/api/plan/export?format=pdf", exportBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported export format")

	w = post(router, "/api/plan/export", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
