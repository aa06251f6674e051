package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirEnv overrides the Claude Code configuration directory
const ConfigDirEnv = "CLAUDE_CONFIG_DIR"

// StoragePaths holds the resolved location of Claude Code session logs
type StoragePaths struct {
	BasePath    string // Claude Code configuration directory (~/.claude)
	ProjectsDir string // per-project session directories (~/.claude/projects)
}

// DetectStoragePaths resolves the Claude Code storage paths. The
// CLAUDE_CONFIG_DIR environment variable takes precedence over ~/.claude.
func DetectStoragePaths() (StoragePaths, error) {
	basePath := os.Getenv(ConfigDirEnv)
	if basePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return StoragePaths{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		basePath = filepath.Join(home, ".claude")
	}

	return StoragePaths{
		BasePath:    basePath,
		ProjectsDir: filepath.Join(basePath, "projects"),
	}, nil
}

// GetStoragePaths returns storage paths, honoring a custom projects directory
func GetStoragePaths(customProjectsDir string) (StoragePaths, error) {
	if customProjectsDir == "" {
		return DetectStoragePaths()
	}
	abs, err := filepath.Abs(expandHome(customProjectsDir))
	if err != nil {
		return StoragePaths{}, fmt.Errorf("failed to resolve projects directory: %w", err)
	}
	return StoragePaths{
		BasePath:    filepath.Dir(abs),
		ProjectsDir: abs,
	}, nil
}

// ProjectsDirExists checks if the projects directory exists
func (sp StoragePaths) ProjectsDirExists() bool {
	info, err := os.Stat(sp.ProjectsDir)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// StorageStats summarizes the contents of the projects directory
type StorageStats struct {
	Projects     int
	SessionFiles int
	TotalBytes   int64
	Skipped      int // hidden directories
}

// ScanProjects counts project directories and session files without reading them
func (sp StoragePaths) ScanProjects() (StorageStats, error) {
	var stats StorageStats

	entries, err := os.ReadDir(sp.ProjectsDir)
	if err != nil {
		return stats, &StorageError{Path: sp.ProjectsDir, Op: "readdir", Err: err}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			stats.Skipped++
			continue
		}
		stats.Projects++

		files, err := os.ReadDir(filepath.Join(sp.ProjectsDir, entry.Name()))
		if err != nil {
			LogDebug("Skipping unreadable project directory %s: %v", entry.Name(), err)
			continue
		}
		for _, f := range files {
			if !isSessionFile(f) {
				continue
			}
			stats.SessionFiles++
			if info, err := f.Info(); err == nil {
				stats.TotalBytes += info.Size()
			}
		}
	}

	return stats, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
