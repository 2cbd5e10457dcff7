// Package report writes statistics, class tables, diagrams and classified
// layers to the results folder of a project.
package report

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// Result subfolder names.
const (
	StatisticsFolder = "statistics"
	FiguresFolder    = "figures"
	GISDataFolder    = "gis_data"
)

// Folders are the output directories of one project.
type Folders struct {
	Root       string
	Statistics string
	Figures    string
	GISData    string
}

// ProjectFolders returns the folder layout <results>/<project>/... without
// touching the filesystem.
func ProjectFolders(results, project string) Folders {
	root := filepath.Join(results, project)
	return Folders{
		Root:       root,
		Statistics: filepath.Join(root, StatisticsFolder),
		Figures:    filepath.Join(root, FiguresFolder),
		GISData:    filepath.Join(root, GISDataFolder),
	}
}

// CreateResultsFolders creates the project result folders. Existing folders
// are kept.
func CreateResultsFolders(results, project string) (Folders, error) {
	if project == "" {
		return Folders{}, eris.New("report: project name is required")
	}
	f := ProjectFolders(results, project)
	for _, dir := range []string{f.Statistics, f.Figures, f.GISData} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Folders{}, eris.Wrapf(err, "report: create folder %s", dir)
		}
	}
	return f, nil
}

// RemovePreviousResults deletes <results>/<project> and everything in it.
// A missing folder is not an error.
func RemovePreviousResults(results, project string) error {
	if project == "" {
		return eris.New("report: project name is required")
	}
	root := ProjectFolders(results, project).Root
	if err := os.RemoveAll(root); err != nil {
		return eris.Wrapf(err, "report: remove %s", root)
	}
	return nil
}
