package search

import (
	"context"
	"testing"

	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

type fakeRepo struct {
	deps     []maven.Dependency
	versions []string

	terms  []string
	coords []string
}

func (r *fakeRepo) Search(_ context.Context, term string) []maven.Dependency {
	r.terms = append(r.terms, term)
	if r.deps == nil {
		return []maven.Dependency{}
	}
	return r.deps
}

func (r *fakeRepo) Versions(_ context.Context, groupID, artifactID string) []string {
	r.coords = append(r.coords, groupID+":"+artifactID)
	if r.versions == nil {
		return []string{}
	}
	return r.versions
}

func TestServiceDelegates(t *testing.T) {
	repo := &fakeRepo{
		deps:     []maven.Dependency{slf4j},
		versions: []string{"2.0.13", "2.0.12", "1.7.36"},
	}
	svc := NewService(repo)
	ctx := context.Background()

	deps := svc.Search(ctx, "g:org.slf4j")
	if len(deps) != 1 || deps[0].ArtifactID != "slf4j-api" {
		t.Errorf("Search() = %+v", deps)
	}
	if len(repo.terms) != 1 || repo.terms[0] != "g:org.slf4j" {
		t.Errorf("repository saw terms %v", repo.terms)
	}

	versions := svc.Versions(ctx, "org.slf4j", "slf4j-api")
	if len(versions) != 3 || versions[2] != "1.7.36" {
		t.Errorf("Versions() = %v", versions)
	}
	if len(repo.coords) != 1 || repo.coords[0] != "org.slf4j:slf4j-api" {
		t.Errorf("repository saw coords %v", repo.coords)
	}
}

func TestServiceEmptyResults(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	if deps := svc.Search(ctx, "non-existent-artifact-12345"); deps == nil || len(deps) != 0 {
		t.Errorf("Search() = %#v, want empty", deps)
	}
	if v := svc.Versions(ctx, "g", "a"); v == nil || len(v) != 0 {
		t.Errorf("Versions() = %#v, want empty", v)
	}
}

func TestServiceFormatting(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if got := svc.FormatDependency(slf4j, FormatSBT); got != FormatDependency(slf4j, FormatSBT) {
		t.Errorf("Service.FormatDependency() = %q", got)
	}
	lines := svc.FormatSearchResults([]maven.Dependency{slf4j})
	if len(lines) != 1 || lines[0] != "1) org.slf4j:slf4j-api:2.0.13" {
		t.Errorf("Service.FormatSearchResults() = %v", lines)
	}
}
