package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/service"
)

type stubFetcher map[string]string

func (f stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	if body, ok := f[url]; ok {
		return body, nil
	}
	return "", errors.New("not found")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		General: &config.GeneralConfig{OutputDir: t.TempDir()},
		Pipelines: []*config.PipelineConfig{
			{
				Name:                "cn_ipv4",
				Family:              config.Ipv4,
				StartID:             60,
				GroupNaming:         config.NamingGlobalSequential,
				BaseLabel:           "国内IPv4",
				IncludePrefixInPool: true,
				OutputFile:          "ikuai_ipv4.txt",
				Sources:             []*config.SourceConfig{{URL: "http://lists.test/v4.txt", Format: config.FormatPlain}},
			},
			{
				Name:        "empty",
				Family:      config.Ipv6,
				StartID:     70,
				GroupNaming: config.NamingGlobalSequential,
				BaseLabel:   "国内IPv6",
				OutputFile:  "empty.txt",
				Sources:     []*config.SourceConfig{{URL: "http://lists.test/missing.txt", Format: config.FormatPlain}},
			},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func newTestRouter(t *testing.T, loadErr error) http.Handler {
	cfg := testConfig(t)
	fetcher := stubFetcher{"http://lists.test/v4.txt": "1.0.2.0/23\n1.0.1.0/24\n"}
	return NewRouter(
		func() (*config.Config, error) {
			if loadErr != nil {
				return nil, loadErr
			}
			return cfg, nil
		},
		func(*config.GeneralConfig) service.SourceFetcher { return fetcher },
	)
}

func doRequest(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "127.0.0.1:40000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckHealth(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil), "/api/v1/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"status":"ok"}` {
		t.Errorf("body = %s", body)
	}
}

func TestGetPipelines(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil), "/api/v1/pipelines")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data PipelinesResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Pipelines) != 2 {
		t.Fatalf("got %d pipelines, want 2", len(resp.Data.Pipelines))
	}
	first := resp.Data.Pipelines[0]
	if first.Name != "cn_ipv4" || first.Family != "IPv4" || first.ChunkSize != 1000 {
		t.Errorf("unexpected pipeline info: %+v", first)
	}
	if !strings.HasSuffix(first.OutputPath, "ikuai_ipv4.txt") {
		t.Errorf("unexpected output path: %s", first.OutputPath)
	}
}

func TestRenderPipeline(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil), "/api/v1/pipelines/cn_ipv4/render")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %s, want text/plain", ct)
	}
	want := "id=60 comment= group_name=国内IPv4-1 addr_pool=1.0.1.0/24,1.0.2.0/23"
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
	if rec.Header().Get("X-Groups-Count") != "1" {
		t.Errorf("X-Groups-Count = %s, want 1", rec.Header().Get("X-Groups-Count"))
	}
}

func TestRenderPipelineNotFound(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil), "/api/v1/pipelines/unknown/render")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("error code = %s, want %s", resp.Error.Code, ErrCodeNotFound)
	}
}

func TestRenderPipelineNoData(t *testing.T) {
	rec := doRequest(newTestRouter(t, nil), "/api/v1/pipelines/empty/render")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != ErrCodeNoData {
		t.Errorf("error code = %s, want %s", resp.Error.Code, ErrCodeNoData)
	}
	if _, ok := resp.Error.Details["国内IPv6"]; !ok {
		t.Errorf("expected scope details, got %v", resp.Error.Details)
	}
}

func TestConfigLoadFailure(t *testing.T) {
	rec := doRequest(newTestRouter(t, errors.New("broken config")), "/api/v1/pipelines")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), string(ErrCodeConfigError)) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
