package service

import "github.com/m8811163008/visitor-desing-pattern/model"

// BuildDemoTree assembles the literal sample tree the application exports
// when no repository is given. The returned tree is frozen.
func BuildDemoTree() *model.Directory {
	music := model.NewDirectory("Music", 1)
	addAll(music,
		model.NewAudioFile("Bohemian Rhapsody", "A Night at the Opera", "mp3", 7465834),
		model.NewAudioFile("Take Five", "Time Out", "flac", 29916527),
		model.NewAudioFile("Clair de Lune", "Suite bergamasque", "mp3", 5436945),
	)

	kittens := model.NewDirectory("Kittens", 2)
	addAll(kittens,
		model.NewImageFile("Sleeping kitten", "1920x1080", "jpg", 1843207),
		model.NewImageFile("Kitten on a keyboard", "3840x2160", "png", 7426013),
	)

	pictures := model.NewDirectory("Pictures", 1)
	addAll(pictures,
		model.NewImageFile("Mountains at dawn", "3840x2160", "jpg", 4521369),
		kittens,
	)

	movies := model.NewDirectory("Movies", 1)
	addAll(movies,
		model.NewVideoFile("The Matrix", "The Wachowskis", "mp4", 951495532),
		model.NewVideoFile("Pulp Fiction", "Quentin Tarantino", "avi", 1251495532),
	)

	documents := model.NewDirectory("Documents", 1)
	addAll(documents,
		model.NewTextFile("Shopping list", "Milk, bread, eggs, coffee", "txt", 430),
		model.NewTextFile("Meeting notes", "The quarterly planning meeting covered the roadmap in detail", "md", 2612453),
	)

	root := model.NewDirectory("Media", 0)
	addAll(root, music, pictures, movies, documents)
	root.Freeze()
	return root
}

// addAll appends nodes to a freshly built, unfrozen directory, where AddFile
// cannot fail.
func addAll(dir *model.Directory, nodes ...model.FileNode) {
	for _, n := range nodes {
		_ = dir.AddFile(n)
	}
}
