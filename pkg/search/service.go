package search

import (
	"context"

	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

// Repository is the remote index a Service reads from.
// Implementations return an empty, non-nil slice on any failure.
type Repository interface {
	Search(ctx context.Context, term string) []maven.Dependency
	Versions(ctx context.Context, groupID, artifactID string) []string
}

var _ Repository = (*maven.Client)(nil)

// Service is stateless and safe for concurrent use.
type Service struct {
	repo Repository
}

// NewService returns a Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns the dependencies matching term.
func (s *Service) Search(ctx context.Context, term string) []maven.Dependency {
	return s.repo.Search(ctx, term)
}

// Versions returns every known version of groupID:artifactID.
func (s *Service) Versions(ctx context.Context, groupID, artifactID string) []string {
	return s.repo.Versions(ctx, groupID, artifactID)
}

// FormatDependency renders dep in the given format. See [FormatDependency].
func (s *Service) FormatDependency(dep maven.Dependency, f Format) string {
	return FormatDependency(dep, f)
}

// FormatSearchResults renders deps as a numbered list. See [FormatSearchResults].
func (s *Service) FormatSearchResults(deps []maven.Dependency) []string {
	return FormatSearchResults(deps)
}
