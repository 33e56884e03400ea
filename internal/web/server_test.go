package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/catalogue"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/logging"
	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/questions"
)

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	cat := catalogue.Default()
	pool, err := questions.Build(cat)
	require.NoError(t, err)

	opts.Seed = 1
	opts.Logger = logging.Discard()
	srv, err := New(cat, pool, opts)
	require.NoError(t, err)
	return srv
}

// client replays the session header it was given on every request.
type client struct {
	t   *testing.T
	h   http.Handler
	sid string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.sid != "" {
		req.Header.Set(SessionHeader, c.sid)
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)
	if sid := w.Header().Get(SessionHeader); sid != "" {
		c.sid = sid
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestNew_RejectsEmptyPool(t *testing.T) {
	_, err := New(catalogue.Default(), nil, Options{})
	assert.ErrorIs(t, err, questions.ErrEmptyPool)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, Options{})
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSession_IssuedAndReused(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	w := c.do(http.MethodPost, "/api/v1/quiz/draw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := c.sid
	require.NotEmpty(t, first)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, first, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	c.do(http.MethodGet, "/api/v1/progress", nil)
	assert.Equal(t, first, c.sid)
	assert.Equal(t, 1, srv.sessions.Len())
}

func TestSession_ReadsDoNotCreate(t *testing.T) {
	srv := newTestServer(t, Options{})

	for _, path := range []string{"/api/v1/catalogue", "/api/v1/progress", "/api/v1/quiz", "/api/v1/flashcards"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Header().Get(SessionHeader), path)
		assert.Empty(t, w.Result().Cookies(), path)
	}
	assert.Equal(t, 0, srv.sessions.Len())
}

func TestSession_CapRefusesNewSessions(t *testing.T) {
	srv := newTestServer(t, Options{MaxSessions: 2})
	a := &client{t: t, h: srv.Handler()}
	b := &client{t: t, h: srv.Handler()}
	require.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/v1/quiz/draw", nil).Code)
	require.Equal(t, http.StatusOK, b.do(http.MethodPost, "/api/v1/quiz/draw", nil).Code)

	extra := &client{t: t, h: srv.Handler()}
	assert.Equal(t, http.StatusServiceUnavailable, extra.do(http.MethodPost, "/api/v1/quiz/draw", nil).Code)
	assert.Equal(t, 2, srv.sessions.Len())

	// Existing sessions keep working.
	assert.Equal(t, http.StatusOK, a.do(http.MethodPost, "/api/v1/quiz/next", nil).Code)
}

func TestSession_CookieIdentifies(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}
	c.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: "Machine Learning|Clasificación"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: c.sid})
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	got := decode[progressDTO](t, w)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, c.sid, w.Header().Get(SessionHeader))
}

func TestSession_UnknownIDNotAdopted(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler(), sid: "6f1c4f5e-0000-4000-8000-000000000000"}
	c.do(http.MethodPost, "/api/v1/quiz/draw", nil)
	assert.NotEqual(t, "6f1c4f5e-0000-4000-8000-000000000000", c.sid)

	c = &client{t: t, h: srv.Handler(), sid: "not-a-uuid"}
	c.do(http.MethodPost, "/api/v1/quiz/draw", nil)
	assert.NotEqual(t, "not-a-uuid", c.sid)
}

func TestSessions_AreIsolated(t *testing.T) {
	srv := newTestServer(t, Options{})
	a := &client{t: t, h: srv.Handler()}
	b := &client{t: t, h: srv.Handler()}

	a.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: "Bases de Datos y SQL|JOIN"})
	got := decode[progressDTO](t, b.do(http.MethodGet, "/api/v1/progress", nil))
	assert.Equal(t, 0, got.Count)
	assert.NotEqual(t, a.sid, b.sid)
}

func TestCatalogue(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	got := decode[struct {
		Categories []categoryDTO `json:"categories"`
	}](t, c.do(http.MethodGet, "/api/v1/catalogue", nil))

	require.Len(t, got.Categories, 5)
	assert.Equal(t, "Programación en Python", got.Categories[0].Name)
	assert.Equal(t, "programacion-en-python", got.Categories[0].Slug)
	assert.Equal(t, "Programación en Python|Variables", got.Categories[0].Topics[0].ID)
}

func TestTopic(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	w := c.do(http.MethodGet, "/api/v1/topics/ciencia-de-datos-con-pandas/dataframes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[topicDTO](t, w)
	assert.Equal(t, "DataFrames", got.Name)
	assert.True(t, got.VisualDemo)
	assert.NotContains(t, w.Body.String(), `"Dos"`)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/v1/topics/nope/dataframes", nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/v1/topics/ciencia-de-datos-con-pandas/nope", nil).Code)
}

func TestProgress_Toggle(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}
	id := "Programación en Python|Variables"

	got := decode[toggleResp](t, c.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: id}))
	assert.True(t, got.Completed)
	assert.Equal(t, 1, got.Count)

	got = decode[toggleResp](t, c.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: id}))
	assert.False(t, got.Completed)
	assert.Equal(t, 0, got.Count)
}

func TestProgress_ToggleRejectsBadIDs(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: "A|Nope"}).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: "no-separator"}).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/v1/progress/toggle", nil).Code)

	got := decode[progressDTO](t, c.do(http.MethodGet, "/api/v1/progress", nil))
	assert.Equal(t, 0, got.Count)
}

func TestProgress_Reset(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}
	for _, id := range []string{
		"Programación en Python|Variables",
		"Programación en Python|Listas",
		"Machine Learning|Clasificación",
	} {
		c.do(http.MethodPost, "/api/v1/progress/toggle", toggleReq{ID: id})
	}

	got := decode[progressDTO](t, c.do(http.MethodGet, "/api/v1/progress", nil))
	require.Equal(t, 3, got.Count)
	assert.Equal(t, 30, got.Total)
	assert.Equal(t, 2, got.Categories[0].Completed)

	got = decode[progressDTO](t, c.do(http.MethodPost, "/api/v1/progress/reset", nil))
	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.Completed)
}

func TestFlashcards(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	w := c.do(http.MethodPost, "/api/v1/flashcards/reveal", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	got := decode[flashcardDTO](t, c.do(http.MethodGet, "/api/v1/flashcards", nil))
	assert.Equal(t, "empty", got.Phase)

	w = c.do(http.MethodPost, "/api/v1/flashcards/draw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[flashcardDTO](t, w)
	require.NotNil(t, got.Card)
	assert.Equal(t, "question", got.Phase)
	assert.False(t, got.Revealed)
	assert.Empty(t, got.Answer)
	assert.NotContains(t, w.Body.String(), `"answer"`)

	rec, err := srv.cat.Topic(catalogue.TopicID(got.Card.ID))
	require.NoError(t, err)

	got = decode[flashcardDTO](t, c.do(http.MethodPost, "/api/v1/flashcards/reveal", nil))
	assert.Equal(t, "answer", got.Phase)
	assert.Equal(t, rec.CorrectAnswer, got.Answer)

	got = decode[flashcardDTO](t, c.do(http.MethodPost, "/api/v1/flashcards/next", nil))
	assert.Equal(t, "question", got.Phase)
	assert.False(t, got.Revealed)
}

func TestQuiz(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	choice := "x"
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/v1/quiz/answer", answerReq{Choice: &choice}).Code)

	w := c.do(http.MethodPost, "/api/v1/quiz/draw", nil)
	require.Equal(t, http.StatusOK, w.Code)
	q := decode[quizDTO](t, w)
	require.NotNil(t, q.Question)
	assert.NotEmpty(t, q.Question.Options)
	assert.NotContains(t, w.Body.String(), "correct_answer")

	rec, err := srv.cat.Topic(catalogue.TopicID(q.Question.ID))
	require.NoError(t, err)

	right := rec.CorrectAnswer
	res := decode[answerResp](t, c.do(http.MethodPost, "/api/v1/quiz/answer", answerReq{Choice: &right}))
	assert.True(t, res.Correct)
	assert.Equal(t, 10, res.Score)

	wrong := "definitely not an option"
	res = decode[answerResp](t, c.do(http.MethodPost, "/api/v1/quiz/answer", answerReq{Choice: &wrong}))
	assert.False(t, res.Correct)
	assert.Equal(t, right, res.CorrectAnswer)
	assert.Equal(t, rec.Definition, res.Definition)
	assert.Equal(t, 10, res.Score)

	q = decode[quizDTO](t, c.do(http.MethodPost, "/api/v1/quiz/next", nil))
	assert.Equal(t, 10, q.Score)
	assert.Equal(t, 2, q.Attempts)
	assert.Equal(t, 1, q.Correct)

	q = decode[quizDTO](t, c.do(http.MethodPost, "/api/v1/quiz/reset-score", nil))
	assert.Equal(t, 0, q.Score)
	assert.NotNil(t, q.Question)
}

func TestQuiz_AnswerNeedsChoice(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}
	c.do(http.MethodPost, "/api/v1/quiz/draw", nil)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/v1/quiz/answer", map[string]string{}).Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, Options{AllowedOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/quiz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/quiz", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t, Options{})
	c := &client{t: t, h: srv.Handler()}

	c.do(http.MethodPost, "/api/v1/quiz/draw", nil)
	c.do(http.MethodPost, "/api/v1/quiz/answer", map[string]string{"choice": "nope"})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "dsmanual_sessions_live 1")
	assert.Contains(t, body, "dsmanual_sessions_created_total 1")
	assert.Contains(t, body, `dsmanual_quiz_answers_total{result="incorrect"} 1`)
	assert.Contains(t, body, `dsmanual_draws_total{mode="quiz"} 1`)
	assert.Contains(t, body, `dsmanual_http_requests_total{method="POST",route="/api/v1/quiz/draw",status="200"} 1`)
}

func TestRegistry_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := newRegistry(10*time.Minute, 0, func() questions.Source { return questions.NewSource(1) })
	r.now = func() time.Time { return now }

	a, err := r.Create()
	require.NoError(t, err)
	b, err := r.Create()
	require.NoError(t, err)

	now = now.Add(6 * time.Minute)
	_, ok := r.Get(a.session.ID())
	require.True(t, ok)

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	_, ok = r.Get(b.session.ID())
	assert.False(t, ok)

	now = now.Add(11 * time.Minute)
	_, ok = r.Get(a.session.ID())
	assert.False(t, ok, "expired sessions are dropped on lookup too")
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_LimitSweepsBeforeRefusing(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := newRegistry(10*time.Minute, 1, func() questions.Source { return questions.NewSource(1) })
	r.now = func() time.Time { return now }

	_, err := r.Create()
	require.NoError(t, err)
	_, err = r.Create()
	assert.ErrorIs(t, err, errRegistryFull)

	now = now.Add(11 * time.Minute)
	_, err = r.Create()
	require.NoError(t, err, "an expired session frees its slot")
	assert.Equal(t, 1, r.Len())
}
