package service

import (
	"strings"

	"github.com/m8811163008/visitor-desing-pattern/model"
)

// HumanReadableExporter renders the tree as labeled, tab-indented lines: one
// header line per file followed by one "\t<label>:<value>\n" line per field.
// Directories emit no header of their own; their children are concatenated in
// insertion order, so nesting is flattened in the output.
type HumanReadableExporter struct{}

func NewHumanReadableExporter() *HumanReadableExporter {
	return &HumanReadableExporter{}
}

func (e *HumanReadableExporter) Title() string { return "Export as text" }

func (e *HumanReadableExporter) VisitAudioFile(f *model.AudioFile) string {
	return e.formatFile(f.Title(), []field{
		{"Album", f.AlbumTitle()},
		{"Extension", f.Extension()},
		{"Size", BytesToString(f.Size())},
	})
}

func (e *HumanReadableExporter) VisitImageFile(f *model.ImageFile) string {
	return e.formatFile(f.Title(), []field{
		{"Resolution", f.Resolution()},
		{"Extension", f.Extension()},
		{"Size", BytesToString(f.Size())},
	})
}

func (e *HumanReadableExporter) VisitTextFile(f *model.TextFile) string {
	return e.formatFile(f.Title(), []field{
		{"Content", previewContent(f.Content())},
		{"Extension", f.Extension()},
		{"Size", BytesToString(f.Size())},
	})
}

func (e *HumanReadableExporter) VisitVideoFile(f *model.VideoFile) string {
	return e.formatFile(f.Title(), []field{
		{"Directed by", f.DirectedBy()},
		{"Extension", f.Extension()},
		{"Size", BytesToString(f.Size())},
	})
}

func (e *HumanReadableExporter) VisitDirectory(d *model.Directory) string {
	var sb strings.Builder
	for _, f := range d.Files() {
		sb.WriteString(f.Accept(e))
	}
	return sb.String()
}

func (e *HumanReadableExporter) formatFile(title string, fields []field) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	for _, fl := range fields {
		sb.WriteByte('\t')
		sb.WriteString(fl.label)
		sb.WriteByte(':')
		sb.WriteString(fl.value)
		sb.WriteByte('\n')
	}
	return sb.String()
}
