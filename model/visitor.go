package model

// Visitor is the operation side of the double dispatch: one method per
// concrete node kind, each returning the text fragment for the subtree rooted
// at the visited node. Title is the human label presentation layers use to
// name the operation; it plays no part in traversal.
//
// Adding an export format means adding a Visitor implementation; the node
// types stay untouched.
type Visitor interface {
	Title() string
	VisitAudioFile(f *AudioFile) string
	VisitImageFile(f *ImageFile) string
	VisitTextFile(f *TextFile) string
	VisitVideoFile(f *VideoFile) string
	VisitDirectory(d *Directory) string
}
