// Package search orchestrates Maven Central lookups and renders the results.
//
// A [Service] delegates searches and version lookups to a [Repository],
// normally a [maven.Client], and turns the returned dependencies into text:
//
//	svc := search.NewService(maven.NewClient(maven.Options{}))
//	deps := svc.Search(ctx, "junit")
//	for _, line := range svc.FormatSearchResults(deps) {
//	    fmt.Println(line)
//	}
//	fmt.Println(svc.FormatDependency(deps[0], search.FormatGradle))
//
// # Formats
//
// [Format] is a closed set of build-tool syntaxes. [ParseFormat] accepts the
// lower-case names case-insensitively, and Format implements the pflag Value
// interface so it can be bound directly to a command-line flag.
//
//	maven         <dependency> block for pom.xml
//	gradle        implementation("g:a:v")
//	gradlekts     implementation("g:a:v")
//	gradlegroovy  implementation 'g:a:v'
//	sbt           libraryDependencies += "g" % "a" % "v"
//
// Formatting is pure. The version used is the first entry of
// Dependency.Versions, which search results always populate.
package search
