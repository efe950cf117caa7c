package pipeline

import (
	"regexp"
	"strings"
)

// Marker sentinels use Unicode Private Use Area characters. They are removed
// from the input before extraction, so a marker found later in the pipeline
// was always produced by ExtractLiterals.
const (
	markerOpen  = "\uE010" // U+E010: Private Use Area
	markerClose = "\uE011" // U+E011: Private Use Area
)

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	sentinelStripper = strings.NewReplacer(markerOpen, "", markerClose, "")
)

// Preprocess prepares raw Markdown for extraction: line endings become \n and
// any marker sentinel runes supplied by the user are dropped.
func Preprocess(content string) string {
	content = normalizeLineEndings(content)
	return sentinelStripper.Replace(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
