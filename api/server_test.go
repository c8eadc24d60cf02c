package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyoez/portfolio-resolver/notify"
	"github.com/moyoez/portfolio-resolver/remote"
	"github.com/moyoez/portfolio-resolver/resolver"
	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

type fakeNotifier struct {
	sent chan *notify.Notification
}

func (f *fakeNotifier) Enabled() bool { return true }

func (f *fakeNotifier) Send(_ context.Context, n *notify.Notification) error {
	f.sent <- n
	return nil
}

type fixture struct {
	handler  http.Handler
	github   *httptest.Server
	notifier *fakeNotifier
}

func newFixture(tb testing.TB, routes map[string]string) *fixture {
	tb.Helper()
	tool.DefaultLogger.SetLevel(log.ErrorLevel)

	var gh *httptest.Server
	gh = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, strings.ReplaceAll(body, "{{base}}", gh.URL))
	}))
	tb.Cleanup(gh.Close)

	repo := types.Repository{Owner: "octo", Name: "portfolio-data", APIBaseURL: gh.URL, RawBaseURL: "https://raw.example.com"}
	client := remote.NewContentsClient(repo, remote.Options{HTTPClient: gh.Client()})
	res := resolver.New(repo, client, resolver.WithLogger(log.New(io.Discard)))
	n := &fakeNotifier{sent: make(chan *notify.Notification, 8)}
	return &fixture{
		handler:  NewServer(":0", res, n).Handler(),
		github:   gh,
		notifier: n,
	}
}

func (fx *fixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, APIPrefix+path, nil)
	rec := httptest.NewRecorder()
	fx.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func entry(name string) string {
	return `{"name":"` + name + `","type":"file","download_url":"{{base}}/dl/` + name + `"}`
}

var portfolioRoutes = map[string]string{
	"/repos/octo/portfolio-data/contents/resume":       "[" + entry("readme.md") + "," + entry("Jane_Doe_CV.pdf") + "]",
	"/repos/octo/portfolio-data/contents/cover-letter": "[]",
	"/repos/octo/portfolio-data/contents/achievements": "[" + entry("aws_cert.png") + "," + entry("notes.txt") + "," + entry("award.pdf") + "]",
	"/repos/octo/portfolio-data/contents/profile.json": entry("profile.json"),
	"/dl/profile.json":           `{"name":"Jane"}`,
	"/repos/octo/portfolio-data": `{"full_name":"octo/portfolio-data"}`,
}

func TestServer_Health(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)
	rec := fx.get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Resume(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)
	rec := fx.get("/resume")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "found", env.Status)
	var view map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Jane_Doe_CV.pdf", view["name"])
	assert.Equal(t, "Jane Doe CV", view["displayName"])
	assert.Equal(t, types.MediaTypePDF, view["mediaType"])
	assert.Equal(t, true, view["isPdf"])
	assert.Equal(t, "https://raw.example.com/octo/portfolio-data/main/resume/Jane_Doe_CV.pdf", view["viewUrl"])
	assert.Equal(t, fx.github.URL+"/dl/Jane_Doe_CV.pdf", view["downloadUrl"])
}

func TestServer_CoverLetterEmpty(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)
	rec := fx.get("/cover-letter")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "empty", env.Status)
	assert.Equal(t, "null", string(env.Data))
}

func TestServer_Achievements(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)
	rec := fx.get("/achievements")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	var views []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 2)
	assert.Equal(t, "aws_cert.png", views[0]["name"])
	assert.Equal(t, true, views[0]["isImage"])
	assert.Equal(t, "award.pdf", views[1]["name"])
}

func TestServer_Profile(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)
	rec := fx.get("/profile")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	assert.JSONEq(t, `{"name":"Jane"}`, string(env.Data))
}

func TestServer_Repository(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)
	rec := fx.get("/repository")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "octo/portfolio-data")
}

func TestServer_FailureDegradesAndNotifies(t *testing.T) {
	fx := newFixture(t, map[string]string{})

	rec := fx.get("/resume")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "failed", env.Status)
	assert.NotEmpty(t, env.Error)
	var view map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Resume.pdf", view["name"])
	assert.Equal(t, true, view["placeholder"])

	select {
	case n := <-fx.notifier.sent:
		assert.Equal(t, notify.EventResolveFailed, n.Type)
		assert.Equal(t, "resume", n.Data["category"])
		assert.Equal(t, rec.Header().Get("X-Request-Id"), n.Data["requestId"])
	case <-time.After(2 * time.Second):
		t.Fatal("expected a failure notification")
	}

	rec = fx.get("/achievements")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "[]", string(decode(t, rec).Data))
}

func TestServer_QRCode(t *testing.T) {
	fx := newFixture(t, portfolioRoutes)

	rec := fx.get("/files/achievements/qrcode?name=award.pdf&size=128")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	assert.Equal(t, http.StatusOK, fx.get("/files/resume/qrcode").Code)
	assert.Equal(t, http.StatusNotFound, fx.get("/files/achievements/qrcode?name=missing.png").Code)
	assert.Equal(t, http.StatusNotFound, fx.get("/files/cover-letter/qrcode").Code)
	assert.Equal(t, http.StatusBadRequest, fx.get("/files/profile/qrcode").Code)
	assert.Equal(t, http.StatusBadRequest, fx.get("/files/resume/qrcode?size=5").Code)
}

func TestServer_StopBeforeStart(t *testing.T) {
	s := NewServer(":0", nil, nil)
	assert.NoError(t, s.Stop(context.Background()))
}
