package handlers

import (
	"agent-portfolio-app/models"
	"agent-portfolio-app/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHelper provides utility methods for test setup
type testHelper struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestHelper(t *testing.T, catalog models.Catalog) *testHelper {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderService, err := services.NewRenderService(models.IntakeTarget{
		Endpoint: "https://piglet-becoming-gar.ngrok-free.app",
		TagKey:   "goponsobdo",
		TagValue: "amijantechai",
	})
	require.NoError(t, err)

	handler := NewPageHandler(renderService, catalog)
	engine := gin.New()
	engine.GET("/", handler.Catalog)
	engine.GET(services.IntakePath, handler.Intake)
	engine.POST(services.IntakePath, handler.SubmitIntake)
	engine.GET("/healthz", handler.Health)

	return &testHelper{t: t, engine: engine}
}

func (h *testHelper) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func (h *testHelper) get(path string) *httptest.ResponseRecorder {
	return h.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (h *testHelper) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.do(req)
}

func testCatalog() models.Catalog {
	return models.NewCatalog(
		models.AgentRecord{ID: 1, Title: "Quality Engineer Agent", Description: "triage", URL: "/sqe"},
		models.AgentRecord{ID: 2, Title: "Business Analyst Agent", Description: "stories"},
	)
}

func TestCatalog_OK(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	rec := h.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeHTML, rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "data-agent-id="))
	assert.Less(t, strings.Index(body, "Quality Engineer Agent"), strings.Index(body, "Business Analyst Agent"))
	assert.NotContains(t, body, "No agents found.")
}

func TestCatalog_Empty(t *testing.T) {
	h := newTestHelper(t, models.Catalog{})

	rec := h.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No agents found.")
	assert.Equal(t, 0, strings.Count(rec.Body.String(), "data-agent-id="))
}

func TestCatalog_ByteIdenticalAcrossRequests(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	first := h.get("/")
	second := h.get("/")

	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Equal(t, first.Header().Get("ETag"), second.Header().Get("ETag"))
}

func TestCatalog_NotModified(t *testing.T) {
	h := newTestHelper(t, testCatalog())
	etag := h.get("/").Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	rec := h.do(req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, etag, rec.Header().Get("ETag"))
}

func TestIntake_OK(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	rec := h.get(services.IntakePath)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeHTML, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `id="agentForm"`)
	assert.Contains(t, rec.Body.String(), "Start Running")
}

func TestSubmitIntake_RedirectsToTarget(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	rec := h.postForm(services.IntakePath, url.Values{"textField": {"Analyze JIRA Issue# TP-3"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "piglet-becoming-gar.ngrok-free.app", location.Host)
	assert.Equal(t, "Analyze JIRA Issue# TP-3", location.Query().Get("query"))
	assert.Equal(t, "amijantechai", location.Query().Get("goponsobdo"))
}

func TestSubmitIntake_IgnoresCredentialFields(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	form := url.Values{"textField": {"Analyze JIRA Issue# TP-3"}}
	secrets := map[string]string{
		"jiraUrl":        "https://jira.internal.example.com",
		"jiraUserName":   "qe-bot-user",
		"jiraToken":      "jira-secret-token-123",
		"githubHost":     "github.internal.example.com",
		"githubToken":    "ghp_secretgithubtoken456",
		"githubRepoName": "payments-service-repo",
	}
	for _, f := range models.OptionalFields() {
		form.Set(f.ID, secrets[f.ID])
	}

	rec := h.postForm(services.IntakePath, form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	location := rec.Header().Get("Location")
	decoded, err := url.QueryUnescape(location)
	require.NoError(t, err)
	for key, value := range secrets {
		assert.NotContains(t, location, key)
		assert.NotContains(t, decoded, value)
	}

	u, err := url.Parse(location)
	require.NoError(t, err)
	assert.Len(t, u.Query(), 2)
}

func TestSubmitIntake_EmptyInstruction(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	rec := h.postForm(services.IntakePath, url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	u, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.True(t, u.Query().Has("query"))
	assert.Empty(t, u.Query().Get("query"))
}

func TestHealth(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	rec := h.get("/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["agents"])
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHelper(t, testCatalog())

	assert.Equal(t, http.StatusNotFound, h.get("/agents").Code)
}

func TestEtagMatches(t *testing.T) {
	etag := `"abc"`
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`"abc"`, true},
		{`W/"abc"`, true},
		{`"x", "abc"`, true},
		{"*", true},
		{`"abd"`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, etagMatches(tt.header, etag), tt.header)
	}
}
