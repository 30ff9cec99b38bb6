// Package service provides the operations performed on the media tree: the
// two export visitors, the byte-size converter, the demo tree and the git
// repository importer.
package service

import (
	"errors"
	"fmt"

	"github.com/m8811163008/visitor-desing-pattern/model"
)

// Format names accepted by ExporterByFormat.
const (
	FormatText = "text"
	FormatXML  = "xml"
)

// ErrUnknownFormat is returned when a format name has no exporter.
var ErrUnknownFormat = errors.New("unknown export format")

// contentPreviewLimit is the longest text content shown before truncation.
const contentPreviewLimit = 30

// field is one label/value pair of an exported file block. Slice order is
// render order.
type field struct {
	label string
	value string
}

// Formats lists the supported export format names in presentation order.
func Formats() []string {
	return []string{FormatText, FormatXML}
}

// Exporters returns the available exporters in presentation order. Callers
// label each one with its Title.
func Exporters() []model.Visitor {
	return []model.Visitor{
		NewHumanReadableExporter(),
		NewXMLExporter(),
	}
}

// ExporterByFormat resolves a format name to its exporter.
func ExporterByFormat(format string) (model.Visitor, error) {
	switch format {
	case FormatText:
		return NewHumanReadableExporter(), nil
	case FormatXML:
		return NewXMLExporter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// previewContent shows text content verbatim up to contentPreviewLimit
// characters, otherwise the leading characters plus an ellipsis marker.
func previewContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentPreviewLimit {
		return content
	}
	return string(runes[:contentPreviewLimit]) + "..."
}
