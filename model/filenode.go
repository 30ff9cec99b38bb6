// Package model holds the composite media tree: four concrete file kinds,
// the Directory composite and the Visitor protocol used to export them.
package model

// FileNode is any node of the media tree, a concrete file or a Directory.
// Size reports the node size in bytes; directories recompute it from their
// children on every call. Accept performs the first half of the double
// dispatch: the node calls back the one Visitor method matching its own kind
// and returns the produced fragment.
type FileNode interface {
	Title() string
	Size() int64
	Accept(v Visitor) string
}

// AudioFile is an immutable leaf node describing an audio track.
type AudioFile struct {
	title      string
	albumTitle string
	extension  string
	size       int64
}

func NewAudioFile(title, albumTitle, extension string, size int64) *AudioFile {
	return &AudioFile{
		title:      title,
		albumTitle: albumTitle,
		extension:  extension,
		size:       size,
	}
}

func (f *AudioFile) Title() string      { return f.title }
func (f *AudioFile) AlbumTitle() string { return f.albumTitle }
func (f *AudioFile) Extension() string  { return f.extension }

// Size returns the stored byte count verbatim.
func (f *AudioFile) Size() int64 { return f.size }

func (f *AudioFile) Accept(v Visitor) string { return v.VisitAudioFile(f) }

// ImageFile is an immutable leaf node describing an image.
type ImageFile struct {
	title      string
	resolution string
	extension  string
	size       int64
}

func NewImageFile(title, resolution, extension string, size int64) *ImageFile {
	return &ImageFile{
		title:      title,
		resolution: resolution,
		extension:  extension,
		size:       size,
	}
}

func (f *ImageFile) Title() string      { return f.title }
func (f *ImageFile) Resolution() string { return f.resolution }
func (f *ImageFile) Extension() string  { return f.extension }
func (f *ImageFile) Size() int64        { return f.size }

func (f *ImageFile) Accept(v Visitor) string { return v.VisitImageFile(f) }

// TextFile is an immutable leaf node describing a text document.
type TextFile struct {
	title     string
	content   string
	extension string
	size      int64
}

func NewTextFile(title, content, extension string, size int64) *TextFile {
	return &TextFile{
		title:     title,
		content:   content,
		extension: extension,
		size:      size,
	}
}

func (f *TextFile) Title() string     { return f.title }
func (f *TextFile) Content() string   { return f.content }
func (f *TextFile) Extension() string { return f.extension }
func (f *TextFile) Size() int64       { return f.size }

func (f *TextFile) Accept(v Visitor) string { return v.VisitTextFile(f) }

// VideoFile is an immutable leaf node describing a video.
type VideoFile struct {
	title      string
	directedBy string
	extension  string
	size       int64
}

func NewVideoFile(title, directedBy, extension string, size int64) *VideoFile {
	return &VideoFile{
		title:      title,
		directedBy: directedBy,
		extension:  extension,
		size:       size,
	}
}

func (f *VideoFile) Title() string      { return f.title }
func (f *VideoFile) DirectedBy() string { return f.directedBy }
func (f *VideoFile) Extension() string  { return f.extension }
func (f *VideoFile) Size() int64        { return f.size }

func (f *VideoFile) Accept(v Visitor) string { return v.VisitVideoFile(f) }
