package nexusbounded

import (
	"embed"
	"regexp"
	"strings"
)

//go:embed VERSION BUILD
var EmbeddedFS embed.FS

const ServiceName = "boundctl"

var buildNumberPattern = regexp.MustCompile(`\d+`)

// GetVersion returns "MAJOR.MINOR.PATCH.BUILD" from the embedded VERSION and BUILD files.
// BUILD falls back to "local" for developer builds.
func GetVersion() string {
	version := readEmbedded("VERSION", "0.0.0")

	build := readEmbedded("BUILD", "local")
	if match := buildNumberPattern.FindString(build); match != "" {
		build = match
	}

	return version + "." + build
}

func readEmbedded(name, fallback string) string {
	content, err := EmbeddedFS.ReadFile(name)
	if err != nil {
		return fallback
	}
	value := strings.TrimSpace(string(content))
	if value == "" {
		return fallback
	}
	return value
}
