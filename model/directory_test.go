package model

import (
	"errors"
	"testing"
)

func addAll(t *testing.T, d *Directory, nodes ...FileNode) {
	t.Helper()
	for _, n := range nodes {
		if err := d.AddFile(n); err != nil {
			t.Fatalf("AddFile(%q): %v", n.Title(), err)
		}
	}
}

func TestDirectory_SizeSumsChildrenRecursively(t *testing.T) {
	root := NewDirectory("root", 0)
	music := NewDirectory("music", 1)
	deep := NewDirectory("deep", 2)

	addAll(t, deep, NewAudioFile("a", "al", "mp3", 100))
	addAll(t, music, NewAudioFile("b", "al", "mp3", 200), deep)
	addAll(t, root, music, NewTextFile("t", "x", "txt", 50))

	if got := root.Size(); got != 350 {
		t.Errorf("root.Size() = %d, want 350", got)
	}
	if got := music.Size(); got != 300 {
		t.Errorf("music.Size() = %d, want 300", got)
	}
}

func TestDirectory_SizeReflectsLaterAdds(t *testing.T) {
	root := NewDirectory("root", 0)
	sub := NewDirectory("sub", 1)
	addAll(t, root, sub)

	before := root.Size()
	addAll(t, sub, NewImageFile("i", "640x480", "png", 42))

	if got := root.Size(); got != before+42 {
		t.Errorf("root.Size() = %d after adding 42 bytes to child, want %d", got, before+42)
	}
}

func TestDirectory_EmptySizeIsZero(t *testing.T) {
	if got := NewDirectory("empty", 0).Size(); got != 0 {
		t.Errorf("Size() = %d, want 0", got)
	}
}

func TestDirectory_AddFilePreservesInsertionOrder(t *testing.T) {
	root := NewDirectory("root", 0)
	sub := NewDirectory("sub", 1)
	addAll(t, root,
		NewAudioFile("first", "al", "mp3", 1),
		sub,
		NewTextFile("third", "x", "txt", 1),
	)

	titles := make([]string, 0, len(root.Files()))
	for _, f := range root.Files() {
		titles = append(titles, f.Title())
	}
	want := []string{"first", "sub", "third"}
	for i, title := range want {
		if titles[i] != title {
			t.Fatalf("Files() order = %v, want %v", titles, want)
		}
	}
}

func TestDirectory_AddFileAfterFreeze(t *testing.T) {
	root := NewDirectory("root", 0)
	sub := NewDirectory("sub", 1)
	addAll(t, root, sub)
	root.Freeze()

	if err := root.AddFile(NewTextFile("t", "x", "txt", 1)); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddFile on frozen root = %v, want ErrFrozen", err)
	}
	// Freeze propagates to nested directories.
	if err := sub.AddFile(NewTextFile("t", "x", "txt", 1)); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddFile on frozen subdirectory = %v, want ErrFrozen", err)
	}
}

func TestDirectory_AddFileRejectsCycles(t *testing.T) {
	root := NewDirectory("root", 0)
	sub := NewDirectory("sub", 1)
	addAll(t, root, sub)

	if err := root.AddFile(root); !errors.Is(err, ErrCycle) {
		t.Errorf("AddFile(self) = %v, want ErrCycle", err)
	}
	if err := sub.AddFile(root); !errors.Is(err, ErrCycle) {
		t.Errorf("AddFile(ancestor) = %v, want ErrCycle", err)
	}
	if got := len(sub.Files()); got != 0 {
		t.Errorf("rejected node was appended anyway, len(Files()) = %d", got)
	}
}
