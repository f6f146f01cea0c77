package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/llm"
	"github.com/harmar-advisory/strategic_site/app/site/internal/conf"
	"github.com/harmar-advisory/strategic_site/app/site/internal/data"
	"github.com/harmar-advisory/strategic_site/app/site/internal/service"
	"github.com/harmar-advisory/strategic_site/app/site/internal/usecase"
)

const briefingText = `EXECUTIVE SYNTHESIS: Align the board on recovery authority.
RISK CLUSTERS: Insurer notice windows.
ADVANTAGE MATRIX: Tested resilience wins procurement.`

func newTestServer(t *testing.T, g llm.Generator) http.Handler {
	t.Helper()
	logger := log.DefaultLogger

	d, cleanup, err := data.NewData(&conf.Site{}, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	content := usecase.NewContentUseCase(data.NewContentRepo(d, logger), logger)
	svc := service.NewSiteService(
		usecase.NewCalibrationUseCase(engine.New(g), data.NewSessionRepo(d, logger), logger),
		content,
		usecase.NewContactUseCase(content, logger),
		logger,
	)
	return NewHTTPServer(&conf.Server{Http: &conf.HTTP{}}, svc, logger)
}

func do(t *testing.T, h http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == service.SessionCookie {
			return c
		}
	}
	return nil
}

func TestIndex(t *testing.T) {
	h := newTestServer(t, llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return briefingText, nil
	}))

	rec := do(t, h, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Harmar Strategic Advisory")
	assert.Contains(t, body, "The Nexus Simulation")
	assert.Contains(t, body, `data-domain="Cyber"`)
	assert.NotNil(t, sessionCookie(rec))
}

func TestCalibrationFlow(t *testing.T) {
	release := make(chan struct{})
	h := newTestServer(t, llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		<-release
		return briefingText, nil
	}))

	rec := do(t, h, http.MethodPost, "/api/calibrations", `{"domain":"Cyber","challenge":"ransomware"}`, nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	var st service.StateReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "loading", st.Phase)
	assert.Equal(t, "Cyber", st.Domain)

	rec = do(t, h, http.MethodPost, "/api/calibrations", `{"domain":"Privacy","challenge":"again"}`, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(release)
	assert.Eventually(t, func() bool {
		rec := do(t, h, http.MethodGet, "/api/calibrations", "", cookie)
		var st service.StateReply
		if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
			return false
		}
		return st.Phase == "success"
	}, 2*time.Second, 10*time.Millisecond)

	rec = do(t, h, http.MethodGet, "/api/calibrations", "", cookie)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.Len(t, st.Sections, 3)
	assert.Equal(t, "Executive Synthesis", st.Sections[0].Title)
	assert.Equal(t, "Align the board on recovery authority.", st.Sections[0].Body)
	assert.True(t, strings.HasPrefix(st.ID, "NX-"))
}

func TestCalibrationValidation(t *testing.T) {
	h := newTestServer(t, llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return briefingText, nil
	}))

	rec := do(t, h, http.MethodPost, "/api/calibrations", `{"domain":"Finance","challenge":"x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/calibrations", `{"domain":"Cyber","challenge":"   "}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/calibrations", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var st service.StateReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "idle", st.Phase)
}

func TestCalibrationFailureShowsFallback(t *testing.T) {
	h := newTestServer(t, llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", context.DeadlineExceeded
	}))

	rec := do(t, h, http.MethodPost, "/api/calibrations", `{"domain":"Industrial","challenge":"plant permits"}`, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	cookie := sessionCookie(rec)

	assert.Eventually(t, func() bool {
		rec := do(t, h, http.MethodGet, "/api/calibrations", "", cookie)
		var st service.StateReply
		_ = json.Unmarshal(rec.Body.Bytes(), &st)
		return st.Phase == "failed" && st.Fallback == engine.FallbackMessage && len(st.Sections) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestContact(t *testing.T) {
	h := newTestServer(t, llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return briefingText, nil
	}))

	rec := do(t, h, http.MethodPost, "/api/contact", `{"name":"Sam","email":"sam@example.com","message":"Hello"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var reply service.ContactReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.True(t, strings.HasPrefix(reply.Href, "mailto:harmartim@gmail.com?subject="), reply.Href)
	assert.Contains(t, reply.Href, "&body=")

	rec = do(t, h, http.MethodPost, "/api/contact", `{"name":"","email":"sam@example.com","message":"Hello"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}))
	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
