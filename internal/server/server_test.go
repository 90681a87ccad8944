package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	cfg := &contract.Config{Patterns: contract.DefaultLibraryPatterns(), Addr: "127.0.0.1:0"}
	s := New(cfg, logger, WithPlannerOptions(core.WithColorPicker(func(int) int { return 0 })))
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts, hook
}

func postPlan(t *testing.T, ts *httptest.Server, body string) (*http.Response, schema.RenderPlan) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/plan", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var plan schema.RenderPlan
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&plan))
	}
	return resp, plan
}

func TestPlanEndpoint(t *testing.T) {
	ts, hook := newTestServer(t)
	resp, plan := postPlan(t, ts, `{"roleScores": "{\"data_analyst\": 72, \"pm\": 0}", "keywords": "[\"ai\",\"cloud\",\"security\"]"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	assert.Equal(t, schema.MountChartAction, plan.Radar.Kind)
	require.NotNil(t, plan.Radar.Chart)
	assert.Equal(t, []string{"Data Analyst", "Pm"}, plan.Radar.Chart.Data.Labels)

	assert.Equal(t, schema.MountWordCloudAction, plan.WordCloud.Kind)
	require.NotNil(t, plan.WordCloud.WordCloud)
	assert.Equal(t, 13, plan.WordCloud.WordCloud.List[0].Weight)
	assert.Equal(t, []string{"#1d4ed8", "#1d4ed8", "#1d4ed8"}, plan.WordCloud.WordCloud.Colors)

	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, "Error building radar chart", e.Message)
	}
}

func TestPlanEndpointFallbacks(t *testing.T) {
	ts, hook := newTestServer(t)

	resp, plan := postPlan(t, ts, `{"roleScores": "{bad", "keywords": "[]", "wordcloud": "no"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, schema.NoopAction, plan.Radar.Kind)
	assert.Equal(t, schema.ReasonInvalidScores, plan.Radar.Reason)
	assert.Equal(t, schema.ShowTextAction, plan.WordCloud.Kind)
	assert.Equal(t, "Library word cloud belum termuat.", plan.WordCloud.Message)

	errorsLogged := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "Error building radar chart" {
			errorsLogged++
		}
	}
	assert.Equal(t, 1, errorsLogged)
}

func TestPlanEndpointAbsentHost(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, plan := postPlan(t, ts, `{"keywords": "[\"go\"]", "wordcloudHost": false, "chart": "no"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, schema.ReasonChartUnavailable, plan.Radar.Reason)
	assert.Equal(t, schema.NoopAction, plan.WordCloud.Kind)
	assert.Equal(t, schema.ReasonHostAbsent, plan.WordCloud.Reason)
}

func TestPlanEndpointBadRequests(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := postPlan(t, ts, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = postPlan(t, ts, `{"chart": "sometimes"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRenderEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	body := `<html><head><script src="/js/chart.umd.min.js"></script></head><body>
<canvas id="radarChart" data-role-scores='{"pm": 40}'></canvas>
<div id="wordcloud" data-keywords='["ai"]'>old</div>
</body></html>`

	resp, err := http.Post(ts.URL+"/api/render", "text/html", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `data-dashviz-kind="chart"`)
	assert.Contains(t, html, `<span class="text-muted">Library word cloud belum termuat.</span>`)
	assert.NotContains(t, html, ">old<")
}

func TestRenderEndpointModeOverride(t *testing.T) {
	ts, _ := newTestServer(t)
	body := `<body><div id="wordcloud" data-keywords='["ai"]'></div></body>`

	resp, err := http.Post(ts.URL+"/api/render?wordcloud=yes", "text/html", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(out), `data-dashviz-kind="wordcloud"`)

	bad, err := http.Post(ts.URL+"/api/render?chart=maybe", "text/html", strings.NewReader(body))
	require.NoError(t, err)
	_ = bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestLabelsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/labels?key=ui_ux_designer&key=backend")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var labels []LabelResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&labels))
	assert.Equal(t, []LabelResponse{
		{Key: "ui_ux_designer", Label: "Ui Ux Designer"},
		{Key: "backend", Label: "Backend"},
	}, labels)

	missing, err := http.Get(ts.URL + "/api/labels")
	require.NoError(t, err)
	_ = missing.Body.Close()
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	ts, _ := newTestServer(t)

	health, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	_ = health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)

	postPlan(t, ts, `{"roleScores": "{\"pm\": 1}"}`)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, `dashviz_plan_actions_total{kind="mount_chart",target="radar"} 1`)
	assert.Contains(t, text, `dashviz_plan_actions_total{kind="show_text",target="wordcloud"} 1`)
	assert.Contains(t, text, `dashviz_http_requests_total{method="POST",route="/api/plan",status_code="200"} 1`)
	assert.Contains(t, text, "dashviz_http_request_duration_seconds")
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/plan", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &contract.Config{Patterns: contract.DefaultLibraryPatterns(), Addr: "127.0.0.1:0"}
	s := New(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
