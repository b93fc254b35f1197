package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/data"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/styling"
	"github.com/Zachkp/folio/internal/tokens"
	"github.com/Zachkp/folio/web"
)

type fakeMailer struct {
	sent []ContactMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type fakeStore struct {
	pingErr error
	visits  []string
	metrics []store.Metric
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) TrackVisit(_, _, path string) { f.visits = append(f.visits, path) }

func (f *fakeStore) RecordMetric(_ context.Context, m store.Metric) (store.Metric, error) {
	if err := m.Validate(); err != nil {
		return store.Metric{}, err
	}
	m.ID = "metric-1"
	f.metrics = append(f.metrics, m)
	return m, nil
}

func (f *fakeStore) Stats(context.Context) (*store.Stats, error) {
	return &store.Stats{TotalVisitors: int64(len(f.visits))}, nil
}

func (f *fakeStore) Cleanup(context.Context, time.Duration) (int64, error) { return 3, nil }

type fixture struct {
	router *gin.Engine
	store  *fakeStore
	mailer *fakeMailer
}

func newFixture(t *testing.T, mutate func(*config.Config)) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:        "development",
		SiteURL:    "https://zach.dev",
		ImagesDir:  t.TempDir(),
		AdminToken: "secret",
	}
	if mutate != nil {
		mutate(cfg)
	}
	site, err := data.Site()
	require.NoError(t, err)
	tmpl, err := web.Templates(web.Funcs())
	require.NoError(t, err)

	f := &fixture{store: &fakeStore{}, mailer: &fakeMailer{}}
	h := New(Deps{
		Config:   cfg,
		Store:    f.store,
		Mailer:   f.mailer,
		Styles:   styling.New(tokens.Default()),
		Site:     site,
		Renderer: web.NewRenderer(tmpl),
	})
	f.router = h.Routes()
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHome_RendersSections(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, id := range []string{`id="hero"`, `id="skills"`, `id="projects"`, `id="contact"`} {
		assert.Contains(t, body, id)
	}
	assert.Contains(t, body, "<title>Zach Kordas-Potter</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://zach.dev/">`)
	assert.NotContains(t, body, "/static/js/perf.js", "perf logger is inert outside production")
	assert.Equal(t, []string{"/"}, f.store.visits)
}

func TestHome_PerfLoggerInProduction(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Env = "production" })
	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `src="/static/js/perf.js"`)
}

func TestHome_Accessibility(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	doc, err := html.Parse(rec.Body)
	require.NoError(t, err)

	var (
		h1s     int
		ids     = map[string]bool{}
		walk    func(*html.Node)
		imgs    []*html.Node
		buttons []*html.Node
		links   []*html.Node
		labels  []*html.Node
	)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				assert.False(t, ids[id], "duplicate id %q", id)
				ids[id] = true
			}
			switch n.Data {
			case "h1":
				h1s++
			case "img":
				imgs = append(imgs, n)
			case "button":
				buttons = append(buttons, n)
			case "a":
				links = append(links, n)
			case "html":
				assert.Equal(t, "en", getAttr(n, "lang"))
			}
			if getAttr(n, "aria-labelledby") != "" || getAttr(n, "aria-controls") != "" {
				labels = append(labels, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	assert.Equal(t, 1, h1s, "exactly one h1")
	for _, img := range imgs {
		assert.NotEmpty(t, getAttr(img, "alt"), "img %s needs alt text", getAttr(img, "src"))
	}
	for _, b := range buttons {
		assert.Contains(t, []string{"button", "submit"}, getAttr(b, "type"), "buttons declare their type")
		assert.True(t, textContent(b) != "" || getAttr(b, "aria-label") != "", "button needs an accessible name")
	}
	for _, a := range links {
		if getAttr(a, "target") == "_blank" {
			assert.Contains(t, getAttr(a, "rel"), "noopener")
		}
	}
	for _, n := range labels {
		for _, key := range []string{"aria-labelledby", "aria-controls"} {
			if ref := getAttr(n, key); ref != "" {
				assert.True(t, ids[ref], "%s=%q points at a missing id", key, ref)
			}
		}
	}
}

func TestHome_ProjectWithoutLinks(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	doc, err := html.Parse(rec.Body)
	require.NoError(t, err)

	card := findByAttr(doc, "aria-labelledby", "project-folio-title")
	require.NotNil(t, card)
	text := textContent(card)
	assert.Contains(t, text, "This Portfolio")
	assert.NotContains(t, text, "Live Demo")
	assert.NotContains(t, text, "GitHub")
}

func TestCaseStudy_ToggleRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	p, err := data.ProjectBySlug("mailtui")
	require.NoError(t, err)

	home := f.do(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	assert.NotContains(t, home, p.CaseStudy.Problem, "case study starts collapsed")
	assert.Contains(t, home, `hx-get="/projects/mailtui/case-study?expanded=true"`)

	open := f.do(httptest.NewRequest(http.MethodGet, "/projects/mailtui/case-study?expanded=true", nil))
	require.Equal(t, http.StatusOK, open.Code)
	for _, s := range []string{p.CaseStudy.Problem, p.CaseStudy.Approach, p.CaseStudy.Outcome} {
		assert.Contains(t, open.Body.String(), s)
	}
	assert.Contains(t, open.Body.String(), `hx-get="/projects/mailtui/case-study?expanded=false"`)

	closed := f.do(httptest.NewRequest(http.MethodGet, "/projects/mailtui/case-study?expanded=false", nil))
	require.Equal(t, http.StatusOK, closed.Code)
	assert.NotContains(t, closed.Body.String(), p.CaseStudy.Problem)
	assert.Contains(t, closed.Body.String(), `aria-expanded="false"`)
}

func TestCaseStudy_Errors(t *testing.T) {
	f := newFixture(t, nil)
	assert.Equal(t, http.StatusNotFound, f.do(httptest.NewRequest(http.MethodGet, "/projects/nope/case-study", nil)).Code)
	assert.Equal(t, http.StatusNotFound, f.do(httptest.NewRequest(http.MethodGet, "/projects/ytm-cli/case-study", nil)).Code, "project without case study")
	assert.Equal(t, http.StatusBadRequest, f.do(httptest.NewRequest(http.MethodGet, "/projects/mailtui/case-study?expanded=maybe", nil)).Code)
}

func TestStylesheet(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/site.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "--color-primary")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, f.do(req).Code)
	assert.Empty(t, f.store.visits, "assets are not tracked")
}

func TestStaticAssets(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/static/js/back-to-top.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "removeEventListener")
}

func TestProjectsAPI(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Projects []struct {
			Slug string `json:"slug"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Projects, len(data.Projects()))

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/projects/game-recommender", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var one struct {
		TechStack struct {
			Visible   []string `json:"visible"`
			Remaining int      `json:"remaining"`
		} `json:"tech_stack"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Len(t, one.TechStack.Visible, 5)
	assert.Equal(t, 2, one.TechStack.Remaining)

	rec = f.do(httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"project not found"}`, rec.Body.String())
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestMetrics_InertOutsideProduction(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(postJSON("/api/metrics", `{"name":"LCP","value":1200}`))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, f.store.metrics)
}

func TestMetrics_Production(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Env = "production" })

	rec := f.do(postJSON("/api/metrics", `{"name":"LCP","value":1200,"path":"/"}`))
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, f.store.metrics, 1)
	assert.Equal(t, "LCP", f.store.metrics[0].Name)

	rec = f.do(postJSON("/api/metrics", `{"name":"CLS","value":0}`))
	assert.Equal(t, http.StatusAccepted, rec.Code, "zero is a valid value")

	assert.Equal(t, http.StatusBadRequest, f.do(postJSON("/api/metrics", `{"name":"LCP"}`)).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(postJSON("/api/metrics", `{"name":"BOGUS","value":1}`)).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(postJSON("/api/metrics", `not json`)).Code)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestContact(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(postForm(url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thank you for your message")
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "ada@example.com", f.mailer.sent[0].Email)

	rec = f.do(postForm(url.Values{"fullName": {"Ada"}, "email": {"not-an-email"}, "message": {"Hello"}}))
	assert.Contains(t, rec.Body.String(), "email address is not valid")
	assert.Len(t, f.mailer.sent, 1)

	f.mailer.err = errors.New("smtp down")
	rec = f.do(postForm(url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}))
	assert.Contains(t, rec.Body.String(), "error sending your message")
}

func TestContactMessage_Validate(t *testing.T) {
	ok := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi"}
	assert.NoError(t, ok.Validate())

	for _, m := range []ContactMessage{
		{Email: "ada@example.com", Message: "hi"},
		{Name: "Ada\r\nBcc: x@y.z", Email: "ada@example.com", Message: "hi"},
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Ada", Email: "nope", Message: "hi"},
		{Name: strings.Repeat("a", 101), Email: "ada@example.com", Message: "hi"},
	} {
		assert.ErrorIs(t, m.Validate(), ErrInvalidContact)
	}
}

func TestComposeMail(t *testing.T) {
	msg := string(composeMail("me@zach.dev", "inbox@zach.dev", ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello"}))
	assert.True(t, strings.HasPrefix(msg, "To: inbox@zach.dev\r\nSubject: Portfolio Contact: Ada\r\n"))
	assert.Contains(t, msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, msg, "Hello")
}

func TestSMTPMailer_RequiresCredentials(t *testing.T) {
	err := NewSMTPMailer(config.SMTPConfig{Host: "localhost", Port: "25"}).Send(context.Background(), ContactMessage{})
	assert.ErrorIs(t, err, ErrMailUnavailable)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Zach Kordas-Potter"}`, rec.Body.String())

	f.store.pingErr = errors.New("database is locked")
	rec = f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unhealthy")
}

func TestVisitorTracking(t *testing.T) {
	f := newFixture(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	f.do(req)
	f.do(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	f.do(httptest.NewRequest(http.MethodGet, "/privacy", nil))
	assert.Empty(t, f.store.visits)

	f.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"/"}, f.store.visits)
}

func TestRequestID(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)

	const id = "0b5a6a4e-7f44-4b57-9a5a-1d1c3c0e9f11"
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, id)
	assert.Equal(t, id, f.do(req).Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "<script>")
	assert.NotEqual(t, "<script>", f.do(req).Header().Get(requestIDHeader))
}

func TestAdmin(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, http.StatusUnauthorized, f.do(httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)).Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, f.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_visitors":0`)

	req = httptest.NewRequest(http.MethodPost, "/admin/api/cleanup", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":3}`, rec.Body.String())
}

func TestAdmin_DisabledWithoutToken(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.AdminToken = "" })
	req := httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil)
	req.Header.Set("Authorization", "Bearer ")
	assert.Equal(t, http.StatusNotFound, f.do(req).Code)
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findByAttr(n *html.Node, key, val string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, key) == val {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findByAttr(c, key, val); f != nil {
			return f
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
