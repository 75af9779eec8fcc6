package domain

// Settings is the effective configuration of one invocation.
type Settings struct {
	// ProjectRoot is the absolute directory the invocation belongs to.
	ProjectRoot string

	// ConfigPath is the config file that was loaded, empty when none was found.
	ConfigPath string

	// Executable is the build tool binary.
	Executable string

	// Repositories are the remote repositories declared for the project.
	Repositories []string

	// LocalRepository overrides the local artifact storage root. Empty keeps the tool's default.
	LocalRepository string

	// Properties are extra key=value overrides passed to every build tool invocation.
	Properties map[string]string

	// CachePath is the persisted classpath cache file.
	CachePath string

	// CacheDisabled turns persistence off; the cache then lives in memory only.
	CacheDisabled bool
}

// EffectiveLocalRepository returns the local artifact storage root in use.
func (s Settings) EffectiveLocalRepository() string {
	if s.LocalRepository != "" {
		return s.LocalRepository
	}
	return DefaultLocalRepository()
}
