package search

import (
	"fmt"
	"strings"

	errs "github.com/matzehuels/mvnsearch/pkg/errors"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

// Format selects the build-tool syntax of a dependency snippet.
type Format int

const (
	FormatMaven Format = iota
	FormatGradle
	FormatGradleKts
	FormatGradleGroovy
	FormatSBT
)

var formatNames = map[Format]string{
	FormatMaven:        "maven",
	FormatGradle:       "gradle",
	FormatGradleKts:    "gradlekts",
	FormatGradleGroovy: "gradlegroovy",
	FormatSBT:          "sbt",
}

const (
	mavenTemplate = `<dependency>
    <groupId>%s</groupId>
    <artifactId>%s</artifactId>
    <version>%s</version>
</dependency>`
	gradleKotlinTemplate = `implementation("%s:%s:%s")`
	gradleGroovyTemplate = `implementation '%s:%s:%s'`
	sbtTemplate          = `libraryDependencies += "%s" %% "%s" %% "%s"`
)

// AllFormats returns every format in declaration order.
func AllFormats() []Format {
	return []Format{FormatMaven, FormatGradle, FormatGradleKts, FormatGradleGroovy, FormatSBT}
}

// FormatNames returns the accepted format names, for help text and completion.
func FormatNames() []string {
	all := AllFormats()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.String()
	}
	return names
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, f := range AllFormats() {
		if formatNames[f] == want {
			return f, nil
		}
	}
	return FormatMaven, errs.New(errs.ErrCodeInvalidFormat,
		"unknown format %q (want one of %s)", name, strings.Join(FormatNames(), ", "))
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

func (f Format) template() string {
	switch f {
	case FormatGradle, FormatGradleKts:
		return gradleKotlinTemplate
	case FormatGradleGroovy:
		return gradleGroovyTemplate
	case FormatSBT:
		return sbtTemplate
	default:
		return mavenTemplate
	}
}

// Render formats a single coordinate. It does not touch the network.
func (f Format) Render(groupID, artifactID, version string) string {
	return fmt.Sprintf(f.template(), groupID, artifactID, version)
}

// FormatDependency renders dep with its first version.
// It panics if dep has no versions; search results always carry one.
func FormatDependency(dep maven.Dependency, f Format) string {
	if len(dep.Versions) == 0 {
		panic(fmt.Sprintf("search: dependency %s has no versions", dep.Coordinate()))
	}
	return f.Render(dep.GroupID, dep.ArtifactID, dep.Versions[0])
}

// FormatSearchResults renders a 1-based numbered list in input order.
func FormatSearchResults(deps []maven.Dependency) []string {
	lines := make([]string, 0, len(deps))
	for i, dep := range deps {
		version := ""
		if len(dep.Versions) > 0 {
			version = dep.Versions[0]
		}
		lines = append(lines, fmt.Sprintf("%d) %s:%s:%s", i+1, dep.GroupID, dep.ArtifactID, version))
	}
	return lines
}
