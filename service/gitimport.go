package service

import (
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/m8811163008/visitor-desing-pattern/model"
)

// RepositoryImporter builds a media tree from the HEAD tree of a git
// repository. Names, sizes and text contents come from the object database,
// so the modeled files are never read from the working tree. Blobs are
// classified into the four file kinds by extension; anything unrecognized is
// treated as text.
type RepositoryImporter struct {
	logger Logger
}

// NewRepositoryImporter creates an importer with the given logger.
func NewRepositoryImporter(logger Logger) *RepositoryImporter {
	return &RepositoryImporter{logger: logger}
}

// ImportPath opens the repository at repoPath and imports its HEAD tree.
func (ri *RepositoryImporter) ImportPath(repoPath string) (*model.Directory, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repo: %w", err)
	}
	return ri.Import(repo)
}

// Import builds the frozen media tree for the repository HEAD.
func (ri *RepositoryImporter) Import(repo *git.Repository) (*model.Directory, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load commit tree: %w", err)
	}

	root := model.NewDirectory("Files", 0)
	if err := ri.importTree(tree, root, 1); err != nil {
		return nil, err
	}
	root.Freeze()

	ri.logger.Info("imported repository tree",
		"commit", head.Hash().String(),
		"size", BytesToString(root.Size()),
	)
	return root, nil
}

func (ri *RepositoryImporter) importTree(tree *object.Tree, dir *model.Directory, level int) error {
	for _, entry := range tree.Entries {
		if entry.Mode.IsFile() {
			f, err := tree.TreeEntryFile(&entry)
			if err != nil {
				return fmt.Errorf("failed to load blob %s: %w", entry.Name, err)
			}
			node, err := ri.fileNode(f)
			if err != nil {
				return err
			}
			if err := dir.AddFile(node); err != nil {
				return fmt.Errorf("failed to add %s: %w", entry.Name, err)
			}
			continue
		}

		subTree, err := tree.Tree(entry.Name)
		if err != nil {
			return fmt.Errorf("failed to load subtree %s: %w", entry.Name, err)
		}
		subDir := model.NewDirectory(entry.Name, level)
		if err := ri.importTree(subTree, subDir, level+1); err != nil {
			return err
		}
		if err := dir.AddFile(subDir); err != nil {
			return fmt.Errorf("failed to add %s: %w", entry.Name, err)
		}
		ri.logger.Debug("imported directory", "name", entry.Name, "level", level)
	}
	return nil
}

func (ri *RepositoryImporter) fileNode(f *object.File) (model.FileNode, error) {
	ext := strings.TrimPrefix(path.Ext(f.Name), ".")
	title := strings.TrimSuffix(f.Name, path.Ext(f.Name))
	size := f.Blob.Size

	switch ext {
	case "mp3", "flac", "wav", "ogg":
		return model.NewAudioFile(title, "", ext, size), nil
	case "jpg", "jpeg", "png", "gif", "bmp", "webp":
		return model.NewImageFile(title, "", ext, size), nil
	case "mp4", "avi", "mkv", "mov", "webm":
		return model.NewVideoFile(title, "", ext, size), nil
	default:
		content, err := f.Contents()
		if err != nil {
			return nil, fmt.Errorf("failed to read blob %s: %w", f.Name, err)
		}
		return model.NewTextFile(title, content, ext, size), nil
	}
}
