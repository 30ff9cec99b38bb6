package service

import (
	"strings"

	"github.com/m8811163008/visitor-desing-pattern/model"
)

// XMLExporter renders the tree as XML-like tagged blocks. The output is a
// presentation format, not valid XML: leaf blocks close with an unslashed
// tag, only the root <Files> wrapper is closed properly. Consumers must not
// feed it to an XML parser.
type XMLExporter struct{}

func NewXMLExporter() *XMLExporter {
	return &XMLExporter{}
}

func (e *XMLExporter) Title() string { return "Export as XML" }

func (e *XMLExporter) VisitAudioFile(f *model.AudioFile) string {
	return e.formatFile("audio", []field{
		{"title", f.Title()},
		{"album", f.AlbumTitle()},
		{"extension", f.Extension()},
		{"size", BytesToString(f.Size())},
	})
}

func (e *XMLExporter) VisitImageFile(f *model.ImageFile) string {
	return e.formatFile("image", []field{
		{"title", f.Title()},
		{"resolution", f.Resolution()},
		{"extension", f.Extension()},
		{"size", BytesToString(f.Size())},
	})
}

func (e *XMLExporter) VisitTextFile(f *model.TextFile) string {
	return e.formatFile("text", []field{
		{"title", f.Title()},
		{"content", previewContent(f.Content())},
		{"extension", f.Extension()},
		{"size", BytesToString(f.Size())},
	})
}

func (e *XMLExporter) VisitVideoFile(f *model.VideoFile) string {
	return e.formatFile("video", []field{
		{"title", f.Title()},
		{"directed_by", f.DirectedBy()},
		{"extension", f.Extension()},
		{"size", BytesToString(f.Size())},
	})
}

// VisitDirectory wraps the root directory (level 0) in a <Files> pair; nested
// directories contribute only their children, flattened like the
// human-readable format.
func (e *XMLExporter) VisitDirectory(d *model.Directory) string {
	var sb strings.Builder
	if d.Level() == 0 {
		sb.WriteString("<Files>\n")
	}
	for _, f := range d.Files() {
		sb.WriteString(f.Accept(e))
	}
	if d.Level() == 0 {
		sb.WriteString("</Files>\n")
	}
	return sb.String()
}

// formatFile emits one tagged block at constant indentation; nesting depth is
// not reflected in the output. The closing kind tag carries no slash, kept
// for output compatibility.
func (e *XMLExporter) formatFile(kind string, fields []field) string {
	var sb strings.Builder
	sb.WriteString("\t\t<")
	sb.WriteString(kind)
	sb.WriteString(">\n")
	for _, fl := range fields {
		sb.WriteString("\t\t\t<")
		sb.WriteString(fl.label)
		sb.WriteString(">")
		sb.WriteString(fl.value)
		sb.WriteString("</")
		sb.WriteString(fl.label)
		sb.WriteString(">\n")
	}
	sb.WriteString("\t\t<")
	sb.WriteString(kind)
	sb.WriteString(">\n")
	return sb.String()
}
