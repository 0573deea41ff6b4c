package maven

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mvnsearch/pkg/buildinfo"
	"github.com/matzehuels/mvnsearch/pkg/integrations"
)

// DefaultBaseURL is the Solr root of the Maven Central search index.
const DefaultBaseURL = "https://search.maven.org/solrsearch"

const (
	searchRows  = 100
	versionRows = 98
)

// Dependency identifies a published artifact on Maven Central.
//
// Versions is ordered as returned by the index. A Dependency built from a
// search result always holds exactly one version, the index's latest; the
// first element is the version used for formatting.
//
// Dependency is a value: it is never mutated after construction.
type Dependency struct {
	GroupID    string   `json:"groupId"`    // e.g. "org.slf4j"
	ArtifactID string   `json:"artifactId"` // e.g. "slf4j-api"
	Packaging  string   `json:"packaging"`  // e.g. "jar" (may be empty)
	Versions   []string `json:"versions"`
}

// Coordinate returns the Maven coordinate string "groupId:artifactId".
// Example: "com.google.guava:guava"
func (d Dependency) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID
}

// Options configures a [Client]. The zero value talks to Maven Central
// with the default timeouts and logs through [log.Default].
type Options struct {
	// BaseURL is the Solr root, without the trailing handler name.
	// Defaults to [DefaultBaseURL].
	BaseURL string

	// HTTPClient is reused for every request. Defaults to
	// [integrations.NewHTTPClient] with the default timeouts.
	HTTPClient *http.Client

	// Logger receives failures that the non-strict lookups swallow.
	Logger *log.Logger
}

// Client provides access to the Maven Central search API.
//
// Lookups come in two flavours. [Client.Search], [Client.Versions],
// [Client.Suggest] and [Client.Browse] never fail: any transport, status or
// decoding problem is logged and reported as an empty slice.
// [Client.FetchSearch] and [Client.FetchVersions] return the same data but
// keep failures distinct from "no matches".
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	logger  *log.Logger
}

// NewClient creates a Maven Central client.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	headers := map[string]string{
		"Accept":     "application/json",
		"User-Agent": "mvnsearch/" + buildinfo.Version,
	}
	return &Client{
		Client:  integrations.NewClient(opts.HTTPClient, headers),
		baseURL: baseURL,
		logger:  logger,
	}
}

// BaseURL returns the Solr root the client queries.
func (c *Client) BaseURL() string { return c.baseURL }

// Search runs a free-text or field-scoped query (e.g. "junit" or
// "g:org.slf4j") against the index and returns up to 100 matches.
//
// The returned slice is never nil. It is empty when nothing matched or the
// request failed; failures are logged.
func (c *Client) Search(ctx context.Context, term string) []Dependency {
	deps, err := c.FetchSearch(ctx, term)
	if err != nil {
		c.logger.Error("search failed", "term", term, "err", err)
		return []Dependency{}
	}
	return deps
}

// FetchSearch is the strict form of [Client.Search].
//
// Returns:
//   - matches in index order (empty, non-nil when nothing matched)
//   - an error wrapping [integrations.ErrNotFound] for HTTP 404
//   - an error wrapping [integrations.ErrNetwork] for transport failures,
//     other non-2xx responses and undecodable bodies
func (c *Client) FetchSearch(ctx context.Context, term string) ([]Dependency, error) {
	q := url.Values{}
	q.Set("q", term)
	q.Set("rows", strconv.Itoa(searchRows))
	q.Set("wt", "json")

	var resp searchResponse
	if err := c.Get(ctx, c.endpoint("select", q), &resp); err != nil {
		return nil, fmt.Errorf("maven search %q: %w", term, err)
	}

	deps := make([]Dependency, 0, len(resp.Response.Docs))
	for _, doc := range resp.Response.Docs {
		deps = append(deps, doc.dependency())
	}
	return deps, nil
}

// Versions lists the published versions of groupID:artifactID using the
// index's "gav" core, up to 98 entries, in the order the index returns them.
//
// The returned slice is never nil; failures are logged and yield an empty slice.
func (c *Client) Versions(ctx context.Context, groupID, artifactID string) []string {
	versions, err := c.FetchVersions(ctx, groupID, artifactID)
	if err != nil {
		c.logger.Error("version lookup failed", "group", groupID, "artifact", artifactID, "err", err)
		return []string{}
	}
	return versions
}

// FetchVersions is the strict form of [Client.Versions], with the same
// error classification as [Client.FetchSearch].
func (c *Client) FetchVersions(ctx context.Context, groupID, artifactID string) ([]string, error) {
	q := url.Values{}
	q.Set("q", "g:"+groupID+" AND a:"+artifactID)
	q.Set("core", "gav")
	q.Set("rows", strconv.Itoa(versionRows))
	q.Set("wt", "json")

	var resp searchResponse
	if err := c.Get(ctx, c.endpoint("select", q), &resp); err != nil {
		return nil, fmt.Errorf("maven versions %s:%s: %w", groupID, artifactID, err)
	}

	versions := make([]string, 0, len(resp.Response.Docs))
	for _, doc := range resp.Response.Docs {
		versions = append(versions, doc.Version)
	}
	return versions, nil
}

// Suggest returns completions for a partial search term from the index's
// suggest handler. Non-string suggestions are skipped.
//
// The returned slice is never nil; failures are logged and yield an empty slice.
func (c *Client) Suggest(ctx context.Context, partial string) []string {
	q := url.Values{}
	q.Set("q", partial)
	q.Set("wt", "json")

	var resp suggestResponse
	if err := c.Get(ctx, c.endpoint("suggest", q), &resp); err != nil {
		c.logger.Error("suggest failed", "term", partial, "err", err)
		return []string{}
	}

	out := make([]string, 0, len(resp.Suggestions))
	for _, raw := range resp.Suggestions {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

// Browse lists coordinates under a group, optionally narrowed to one
// artifact. Empty arguments are left out of the query. Each entry is
// "groupId:artifactId", with ":version" appended when the index reports one.
//
// The returned slice is never nil; failures are logged and yield an empty slice.
func (c *Client) Browse(ctx context.Context, groupID, artifactID string) []string {
	q := url.Values{}
	q.Set("wt", "json")
	if groupID != "" {
		q.Set("g", groupID)
	}
	if artifactID != "" {
		q.Set("a", artifactID)
	}

	var resp searchResponse
	if err := c.Get(ctx, c.endpoint("browse", q), &resp); err != nil {
		c.logger.Error("browse failed", "group", groupID, "artifact", artifactID, "err", err)
		return []string{}
	}

	out := make([]string, 0, len(resp.Response.Docs))
	for _, doc := range resp.Response.Docs {
		coord := doc.GroupID + ":" + doc.ArtifactID
		if doc.Version != "" {
			coord += ":" + doc.Version
		}
		out = append(out, coord)
	}
	return out
}

func (c *Client) endpoint(handler string, q url.Values) string {
	return c.baseURL + "/" + handler + "?" + q.Encode()
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	GroupID       string `json:"g"`
	ArtifactID    string `json:"a"`
	Packaging     string `json:"p"`
	Version       string `json:"v"`
	LatestVersion string `json:"latestVersion"`
}

func (d searchDoc) dependency() Dependency {
	version := d.LatestVersion
	if version == "" {
		version = d.Version
	}
	return Dependency{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Packaging:  d.Packaging,
		Versions:   []string{version},
	}
}

type suggestResponse struct {
	Suggestions []json.RawMessage `json:"suggestions"`
}
