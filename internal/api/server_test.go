package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/mvnsearch/pkg/errors"
	"github.com/matzehuels/mvnsearch/pkg/integrations"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

type fakeFetcher struct {
	deps     []maven.Dependency
	versions []string
	err      error

	lastTerm  string
	lastCoord string
}

func (f *fakeFetcher) FetchSearch(_ context.Context, term string) ([]maven.Dependency, error) {
	f.lastTerm = term
	if f.err != nil {
		return nil, f.err
	}
	if f.deps == nil {
		return []maven.Dependency{}, nil
	}
	return f.deps, nil
}

func (f *fakeFetcher) FetchVersions(_ context.Context, groupID, artifactID string) ([]string, error) {
	f.lastCoord = groupID + ":" + artifactID
	if f.err != nil {
		return nil, f.err
	}
	if f.versions == nil {
		return []string{}, nil
	}
	return f.versions, nil
}

func newTestServer(t *testing.T, f Fetcher) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(f, log.New(io.Discard)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: decode body: %v", path, err)
		}
	}
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, &fakeFetcher{})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("GET /healthz = %d %q", resp.StatusCode, body)
	}
}

func TestSearch(t *testing.T) {
	f := &fakeFetcher{deps: []maven.Dependency{
		{GroupID: "junit", ArtifactID: "junit", Packaging: "jar", Versions: []string{"4.13.2"}},
	}}
	ts := newTestServer(t, f)

	var body searchResponse
	resp := get(t, ts, "/search?q="+url.QueryEscape("g:junit AND a:junit"), &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if f.lastTerm != "g:junit AND a:junit" {
		t.Errorf("fetcher saw term %q", f.lastTerm)
	}
	if len(body.Dependencies) != 1 || body.Dependencies[0].ArtifactID != "junit" {
		t.Errorf("dependencies = %+v", body.Dependencies)
	}
}

func TestSearchNoResultsIsEmptyList(t *testing.T) {
	ts := newTestServer(t, &fakeFetcher{})

	resp, err := http.Get(ts.URL + "/search?q=non-existent-artifact-12345")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(raw)) != `{"dependencies":[]}` {
		t.Errorf("body = %s", raw)
	}
}

func TestVersions(t *testing.T) {
	f := &fakeFetcher{versions: []string{"2.0.13", "2.0.12"}}
	ts := newTestServer(t, f)

	var body versionsResponse
	resp := get(t, ts, "/versions?groupId=org.slf4j&artifactId=slf4j-api", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if f.lastCoord != "org.slf4j:slf4j-api" {
		t.Errorf("fetcher saw %q", f.lastCoord)
	}
	if len(body.Versions) != 2 || body.Versions[0] != "2.0.13" {
		t.Errorf("versions = %v", body.Versions)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"", "<dependency>\n    <groupId>org.slf4j</groupId>\n    <artifactId>slf4j-api</artifactId>\n    <version>2.0.13</version>\n</dependency>"},
		{"gradle", `implementation("org.slf4j:slf4j-api:2.0.13")`},
		{"GRADLEGROOVY", `implementation 'org.slf4j:slf4j-api:2.0.13'`},
		{"sbt", `libraryDependencies += "org.slf4j" % "slf4j-api" % "2.0.13"`},
	}

	ts := newTestServer(t, &fakeFetcher{})
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var body formatResponse
			path := "/format?groupId=org.slf4j&artifactId=slf4j-api&version=2.0.13&format=" + tt.format
			resp := get(t, ts, path, &body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if body.Snippet != tt.want {
				t.Errorf("snippet = %q, want %q", body.Snippet, tt.want)
			}
		})
	}
}

func TestBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errs.Code
	}{
		{"search without q", "/search", errs.ErrCodeInvalidInput},
		{"search blank q", "/search?q=%20%20", errs.ErrCodeInvalidInput},
		{"versions without artifact", "/versions?groupId=org.slf4j", errs.ErrCodeInvalidInput},
		{"versions with colon", "/versions?groupId=org.slf4j&artifactId=a:b", errs.ErrCodeInvalidInput},
		{"format without version", "/format?groupId=g&artifactId=a", errs.ErrCodeInvalidInput},
		{"format unknown", "/format?groupId=g&artifactId=a&version=1&format=ivy", errs.ErrCodeInvalidFormat},
	}

	ts := newTestServer(t, &fakeFetcher{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body errorResponse
			resp := get(t, ts, tt.path, &body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.Message == "" {
				t.Error("error body should carry a message")
			}
		})
	}
}

func TestUpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errs.Code
	}{
		{"network", fmt.Errorf("maven search: %w: dial tcp: refused", integrations.ErrNetwork), errs.ErrCodeNetwork},
		{"not found", fmt.Errorf("maven search: %w", integrations.ErrNotFound), errs.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, &fakeFetcher{err: tt.err})
			for _, path := range []string{"/search?q=junit", "/versions?groupId=junit&artifactId=junit"} {
				var body errorResponse
				resp := get(t, ts, path, &body)
				if resp.StatusCode != http.StatusBadGateway {
					t.Errorf("%s: status = %d, want 502", path, resp.StatusCode)
				}
				if body.Code != tt.code {
					t.Errorf("%s: code = %q, want %q", path, body.Code, tt.code)
				}
			}
		})
	}
}

func TestUnexpectedErrorIsInternal(t *testing.T) {
	ts := newTestServer(t, &fakeFetcher{err: fmt.Errorf("boom")})

	var body errorResponse
	resp := get(t, ts, "/search?q=junit", &body)
	if resp.StatusCode != http.StatusInternalServerError || body.Code != errs.ErrCodeInternal {
		t.Errorf("got %d %q, want 500 INTERNAL_ERROR", resp.StatusCode, body.Code)
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, &fakeFetcher{})

	resp := get(t, ts, "/healthz", nil)
	if id := resp.Header.Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("generated %s = %q, want a UUID", RequestIDHeader, id)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if id := resp2.Header.Get(RequestIDHeader); id != "trace-123" {
		t.Errorf("%s = %q, want the caller's ID echoed", RequestIDHeader, id)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, &fakeFetcher{})

	resp, err := http.Post(ts.URL+"/search?q=junit", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST /search = %d, want 405", resp.StatusCode)
	}
}

func TestRequestLogging(t *testing.T) {
	var buf syncBuffer
	logger := log.New(&buf)
	ts := httptest.NewServer(New(&fakeFetcher{}, logger).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/search?q=junit")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	ts.Close()

	out := buf.String()
	for _, want := range []string{"request", "path=/search", "status=200", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
