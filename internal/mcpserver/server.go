// Package mcpserver exposes Maven Central search as Model Context Protocol tools.
//
// Two tools are registered:
//
//	search               searchTerm -> {"dependencies": [...]}
//	getArtifactVersions  groupId, artifactId -> {"versions": [...]}
//
// Results are returned as-is. Picking a dependency and formatting it is left
// to the calling agent. Lookup failures yield empty lists, as in the CLI.
package mcpserver

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matzehuels/mvnsearch/pkg/buildinfo"
	errs "github.com/matzehuels/mvnsearch/pkg/errors"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
	"github.com/matzehuels/mvnsearch/pkg/search"
)

// Name is the implementation name reported to MCP clients.
const Name = "mvnsearch"

// SearchInput is the argument of the search tool.
type SearchInput struct {
	SearchTerm string `json:"searchTerm" jsonschema:"free-text query, or a field query such as g:org.slf4j"`
}

// SearchOutput is the result of the search tool.
type SearchOutput struct {
	Dependencies []maven.Dependency `json:"dependencies"`
}

// VersionsInput is the argument of the getArtifactVersions tool.
type VersionsInput struct {
	GroupID    string `json:"groupId" jsonschema:"Maven groupId, e.g. org.slf4j"`
	ArtifactID string `json:"artifactId" jsonschema:"Maven artifactId, e.g. slf4j-api"`
}

// VersionsOutput is the result of the getArtifactVersions tool.
type VersionsOutput struct {
	Versions []string `json:"versions"`
}

// Server serves the search tools.
type Server struct {
	svc    *search.Service
	logger *log.Logger
	server *mcp.Server
}

// New creates a Server backed by repo. A nil logger uses log.Default().
func New(repo search.Repository, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		svc:    search.NewService(repo),
		logger: logger,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    Name,
			Version: buildinfo.Version,
		}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search Maven Central for artifacts. Returns up to 100 dependencies with their latest version.",
	}, s.search)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getArtifactVersions",
		Description: "List the known versions of a Maven artifact, newest first as reported by Maven Central.",
	}, s.versions)

	return s
}

// Run serves requests over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving MCP on stdio", "name", Name, "version", buildinfo.Version)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) search(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	term := strings.TrimSpace(in.SearchTerm)
	if term == "" {
		return nil, SearchOutput{Dependencies: []maven.Dependency{}}, nil
	}

	deps := s.svc.Search(ctx, term)
	s.logger.Debug("tool search", "term", term, "results", len(deps))
	return nil, SearchOutput{Dependencies: deps}, nil
}

func (s *Server) versions(ctx context.Context, _ *mcp.CallToolRequest, in VersionsInput) (*mcp.CallToolResult, VersionsOutput, error) {
	groupID := strings.TrimSpace(in.GroupID)
	artifactID := strings.TrimSpace(in.ArtifactID)
	if err := errs.ValidateCoordinate(groupID, artifactID); err != nil {
		return nil, VersionsOutput{}, err
	}

	versions := s.svc.Versions(ctx, groupID, artifactID)
	s.logger.Debug("tool getArtifactVersions", "group", groupID, "artifact", artifactID, "results", len(versions))
	return nil, VersionsOutput{Versions: versions}, nil
}
