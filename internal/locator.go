package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// FindSessionFiles returns the session files under root whose modification
// time falls within w, oldest first. Only the immediate subdirectories of root
// are searched and hidden ones are skipped. A missing root yields an error
// wrapping ErrProjectsDirNotFound.
func FindSessionFiles(root string, w TimeWindow) ([]LogFile, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &StorageError{Path: root, Op: "readdir", Err: ErrProjectsDirNotFound}
		}
		return nil, &StorageError{Path: root, Op: "readdir", Err: err}
	}

	var files []LogFile
	var scanned int
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		projectDir := filepath.Join(root, entry.Name())
		candidates, err := os.ReadDir(projectDir)
		if err != nil {
			LogDebug("Skipping project directory %s: %v", entry.Name(), err)
			continue
		}

		for _, c := range candidates {
			if !isSessionFile(c) {
				continue
			}
			scanned++

			path := filepath.Join(projectDir, c.Name())
			info, err := os.Stat(path)
			if err != nil {
				LogDebug("Skipping %s: %v", path, err)
				continue
			}
			if !w.Contains(info.ModTime()) {
				continue
			}
			files = append(files, NewLogFile(path, info.ModTime(), info.Size()))
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	LogDebug("Scanned %d session file(s), %d within %s (%s)", scanned, len(files), w.Label, humanize.Bytes(uint64(totalSize(files))))
	return files, nil
}

// isSessionFile reports whether a project directory entry is a session log
func isSessionFile(entry os.DirEntry) bool {
	return !entry.IsDir() && strings.HasSuffix(entry.Name(), SessionFileExt)
}

func totalSize(files []LogFile) int64 {
	var n int64
	for _, f := range files {
		n += f.Size
	}
	return n
}
