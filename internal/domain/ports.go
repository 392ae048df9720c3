package domain

// ConfigLoader loads the effective configuration for a project.
// source is the file the configuration came from, or "" for defaults.
type ConfigLoader interface {
	Load(projectPath, explicitFile string) (cfg Config, source string, err error)
}

// IgnoreMatcher decides whether a path, split into segments relative to the
// project directory, is ignored.
type IgnoreMatcher interface {
	Match(path []string, isDir bool) bool
}

// IgnoreLoader reads ignore patterns for a project. It returns a nil matcher
// and zero patterns when the project has no ignore file.
type IgnoreLoader interface {
	Load(projectPath string) (matcher IgnoreMatcher, patterns int, err error)
}

// GitInfo provides repository metadata for reports.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
}
