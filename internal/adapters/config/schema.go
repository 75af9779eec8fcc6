package config

// Configfile represents the structure of the jarpath.yaml configuration file.
type Configfile struct {
	Version         string            `yaml:"version"`
	Repositories    []string          `yaml:"repositories"`
	LocalRepository string            `yaml:"localRepository"`
	Executable      string            `yaml:"executable"`
	Properties      map[string]string `yaml:"properties"`
	Cache           CacheDTO          `yaml:"cache"`
}

// CacheDTO represents the cache section of the configuration.
type CacheDTO struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

// SupportedVersion is the only configuration version understood by this loader.
const SupportedVersion = "1"
