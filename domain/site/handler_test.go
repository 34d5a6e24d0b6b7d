package site

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutian475-collab/wutian111/domain/catalog"
	"github.com/wutian475-collab/wutian111/domain/contact"
	"github.com/wutian475-collab/wutian111/domain/viewstate"
	"github.com/wutian475-collab/wutian111/internal/config"
	"github.com/wutian475-collab/wutian111/internal/server"
)

const (
	testDelay = 100 * time.Millisecond
	testHold  = 300 * time.Millisecond
	waitFor   = 2 * time.Second
	tick      = 5 * time.Millisecond
)

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{Name: "商途 AI", ICP: "京ICP备2024000000号"},
		Session: config.SessionConfig{
			CookieName: "test_sid",
			TTL:        time.Minute,
		},
	}
}

func newTestServer(t *testing.T, limiter *contact.RateLimiter) *echo.Echo {
	t.Helper()

	cfg := testConfig()
	log := slog.Default()
	intake := contact.NewSimulatedIntake(testDelay, "test@example.com", log)
	sessions := viewstate.NewStore(intake, testHold, cfg.Session.TTL, log)
	t.Cleanup(sessions.Close)

	if limiter == nil {
		limiter = contact.NewRateLimiter(0, 1)
	}

	e := server.NewEcho(server.EchoParams{Config: cfg, Log: log})
	RegisterRoutes(e, NewHandler(cfg, catalog.NewStore(log), sessions, limiter, log))
	return e
}

// visitor replays the session cookie across requests.
type visitor struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newVisitor(t *testing.T, e *echo.Echo) *visitor {
	return &visitor{t: t, e: e}
}

func (v *visitor) do(method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	v.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}

	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "test_sid" {
			v.cookie = c
		}
	}
	return rec
}

func (v *visitor) doc(rec *httptest.ResponseRecorder) *goquery.Document {
	v.t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(v.t, err)
	return doc
}

func (v *visitor) formStatus() string {
	rec := v.do(http.MethodGet, "/ui/contact", nil, true)
	return v.doc(rec).Find("#contact-panel").AttrOr("data-form-status", "")
}

func validForm() url.Values {
	return url.Values{
		"name":        {"张三"},
		"contact":     {"13800000000"},
		"projectType": {"agent"},
		"budget":      {"5w-10w"},
		"description": {"想做一个客服智能体"},
	}
}

func TestIndex_IssuesSessionAndRendersPage(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	rec := v.do(http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, v.cookie)
	assert.True(t, v.cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, v.cookie.SameSite)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	doc := v.doc(rec)
	assert.Equal(t, 6, doc.Find(".product-card").Length())
	assert.Equal(t, "idle", doc.Find("#contact-panel").AttrOr("data-form-status", ""))

	first := v.cookie.Value
	v.cookie.MaxAge = 0
	v.do(http.MethodGet, "/", nil, false)
	assert.Equal(t, first, v.cookie.Value, "session is reused")
	assert.Equal(t, int(time.Minute.Seconds()), v.cookie.MaxAge, "cookie lifetime is refreshed")
}

func TestIndex_CategoryQuery(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	rec := v.do(http.MethodGet, "/?category=operation", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := v.doc(rec)
	want := len(catalog.FilterByCategory(catalog.Products(), catalog.CategoryOperation))
	assert.Equal(t, want, doc.Find(".product-card").Length())
	assert.Equal(t, "operation", doc.Find(".filter-tab-active").AttrOr("value", ""))

	rec = v.do(http.MethodGet, "/?category=unknown", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"unknown_category"`)
}

func TestSelectCategory(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	rec := v.do(http.MethodPost, "/ui/category", url.Values{"category": {"visual"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := v.doc(rec)
	assert.Equal(t, 1, doc.Find("#products").Length())
	assert.Equal(t, 0, doc.Find("#navbar").Length(), "fragment only")
	doc.Find(".product-card").Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, "visual", s.AttrOr("data-category", ""))
	})

	// The selection persists for the next full render.
	page := v.doc(v.do(http.MethodGet, "/", nil, false))
	assert.Equal(t, "visual", page.Find(".filter-tab-active").AttrOr("value", ""))

	rec = v.do(http.MethodPost, "/ui/category", url.Values{"category": {"operation"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#products", rec.Header().Get(echo.HeaderLocation))

	rec = v.do(http.MethodPost, "/ui/category", url.Values{"category": {"nope"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuAndNavigation(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	rec := v.do(http.MethodPost, "/ui/menu/toggle", url.Values{}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, v.doc(rec).Find("#mobile-menu").Length())

	rec = v.do(http.MethodPost, "/ui/nav", url.Values{"href": {"#services"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, v.doc(rec).Find("#mobile-menu").Length(), "following a link closes the menu")

	var trigger map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &trigger))
	assert.Equal(t, "services", trigger[scrollEvent]["anchor"])

	rec = v.do(http.MethodPost, "/ui/nav", url.Values{"href": {"#products"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#products", rec.Header().Get(echo.HeaderLocation))

	rec = v.do(http.MethodPost, "/ui/nav", url.Values{"href": {"#pricing"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"unknown_anchor"`)
}

func TestPrimaryCTA_ClosesMenuAndTargetsContact(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	v.do(http.MethodPost, "/ui/menu/toggle", url.Values{}, true)
	rec := v.do(http.MethodPost, "/ui/cta", url.Values{}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", v.doc(rec).Find("#navbar").AttrOr("data-menu-open", ""))
	assert.Contains(t, rec.Header().Get("HX-Trigger"), `"anchor":"contact"`)

	rec = v.do(http.MethodPost, "/ui/cta", url.Values{}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))
}

func TestObserveScroll(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	tests := []struct {
		offset   string
		scrolled bool
	}{
		{"0", false},
		{"50", false},
		{"50.5", true},
		{"400", true},
	}
	for _, tt := range tests {
		rec := v.do(http.MethodPost, "/ui/scroll", url.Values{"offset": {tt.offset}}, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, tt.scrolled, v.doc(rec).Find("#navbar").HasClass("scrolled"), "offset %s", tt.offset)
	}

	rec := v.do(http.MethodPost, "/ui/scroll", url.Values{"offset": {"far"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContact_EndToEnd(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))
	v.do(http.MethodGet, "/", nil, false)

	rec := v.do(http.MethodPost, "/contact", validForm(), true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := v.doc(rec)
	assert.Equal(t, "submitting", doc.Find("#contact-panel").AttrOr("data-form-status", ""))
	_, disabled := doc.Find("#contact-form button[type=submit]").Attr("disabled")
	assert.True(t, disabled)

	rec = v.do(http.MethodPost, "/contact", validForm(), true)
	assert.Equal(t, http.StatusConflict, rec.Code, "second submit while submitting")

	require.Eventually(t, func() bool { return v.formStatus() == "success" }, waitFor, tick)

	rec = v.do(http.MethodPost, "/contact", validForm(), true)
	assert.Equal(t, http.StatusConflict, rec.Code, "submit during success hold")

	require.Eventually(t, func() bool { return v.formStatus() == "idle" }, waitFor, tick)

	page := v.doc(v.do(http.MethodGet, "/", nil, false))
	assert.Equal(t, "", page.Find("input#field-name").AttrOr("value", ""), "form is empty again")
}

func TestSubmitContact_PlainFormRedirects(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	rec := v.do(http.MethodPost, "/contact", validForm(), false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))

	page := v.doc(v.do(http.MethodGet, "/", nil, false))
	assert.NotEqual(t, "idle", page.Find("#contact-panel").AttrOr("data-form-status", ""))
}

func TestSubmitContact_Validation(t *testing.T) {
	v := newVisitor(t, newTestServer(t, nil))

	form := validForm()
	form.Set("name", "   ")
	rec := v.do(http.MethodPost, "/contact", form, true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	doc := v.doc(rec)
	assert.Equal(t, "idle", doc.Find("#contact-panel").AttrOr("data-form-status", ""))
	assert.Equal(t, contact.FieldName, doc.Find(".field-error").AttrOr("data-field", ""))
	assert.Equal(t, "13800000000", doc.Find("input#field-contact").AttrOr("value", ""))

	rec = v.do(http.MethodPost, "/contact", form, false)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 1, v.doc(rec).Find("#hero").Length(), "plain forms get the full page")
}

func TestSubmitContact_JSON(t *testing.T) {
	e := newTestServer(t, nil)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"name":"","contact":"13800000000","description":"x"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error.Code)
	assert.Contains(t, body.Error.Details, contact.FieldName)

	rec = post(`{"name":"李四","contact":"lisi@example.com","description":"视频代运营"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"submitting"`)
}

func TestSubmitContact_RateLimited(t *testing.T) {
	e := newTestServer(t, contact.NewRateLimiter(1, 1))
	a := newVisitor(t, e)
	b := newVisitor(t, e)

	rec := a.do(http.MethodPost, "/contact", validForm(), true)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same client IP, different session.
	rec = b.do(http.MethodPost, "/contact", validForm(), true)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"rate_limited"`)
}

func TestSubmitContact_RejectedAttemptsAreNotCharged(t *testing.T) {
	e := newTestServer(t, contact.NewRateLimiter(1, 1))
	v := newVisitor(t, e)

	invalid := validForm()
	invalid.Set("contact", "")
	for i := 0; i < 3; i++ {
		rec := v.do(http.MethodPost, "/contact", invalid, true)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	}

	rec := v.do(http.MethodPost, "/contact", validForm(), true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = v.do(http.MethodPost, "/contact", validForm(), true)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "the accepted submission used the token")
}

func TestCatalogAPI(t *testing.T) {
	e := newTestServer(t, nil)

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/api/catalog/products?category=ai-agent")
	require.Equal(t, http.StatusOK, rec.Code)
	var products ProductList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Equal(t, catalog.CategoryAIAgent, products.Category)
	assert.Equal(t, len(products.Products), products.Total)
	for _, p := range products.Products {
		assert.Equal(t, catalog.CategoryAIAgent, p.Category)
	}

	rec = get("/api/catalog/products")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Equal(t, 6, products.Total)

	rec = get("/api/catalog/products?category=food")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get("/api/catalog/services")
	require.Equal(t, http.StatusOK, rec.Code)
	var services ServiceList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	assert.Equal(t, 3, services.Total)
	assert.Empty(t, rec.Result().Cookies(), "API routes do not open sessions")
}

func TestStaticAssets(t *testing.T) {
	e := newTestServer(t, nil)

	for _, path := range []string{"/static/styles.css", "/static/js/site.js"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Body.String(), path)
	}
}
