// Package config provides the configuration loader for jarpath.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/jarpath/internal/adapters/fs"
	"go.trai.ch/jarpath/internal/core/domain"
	"go.trai.ch/jarpath/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd looking for jarpath.yaml. The directory holding it becomes the
// project root; without one, cwd is the project root and defaults apply.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, errors.Join(domain.ErrFailedToGetRoot, zerr.With(zerr.Wrap(err, "abs"), "cwd", cwd))
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		return defaults(absCwd), nil
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", configPath, file.Version, SupportedVersion))
	}

	root := filepath.Dir(configPath)
	settings := defaults(root)
	settings.ConfigPath = configPath

	for i, url := range file.Repositories {
		if strings.TrimSpace(url) == "" {
			invalid := zerr.With(zerr.New("blank repository entry"), "index", i)
			return nil, errors.Join(domain.ErrInvalidRepositoryURL, zerr.With(invalid, "path", configPath))
		}
		settings.Repositories = append(settings.Repositories, strings.TrimSpace(url))
	}

	if file.Executable != "" {
		settings.Executable = file.Executable
	}
	if file.LocalRepository != "" {
		settings.LocalRepository = resolvePath(root, file.LocalRepository)
	}
	if len(file.Properties) > 0 {
		settings.Properties = maps.Clone(file.Properties)
	}
	if file.Cache.Path != "" {
		settings.CachePath = resolvePath(root, file.Cache.Path)
	}
	settings.CacheDisabled = file.Cache.Disabled

	return settings, nil
}

func defaults(root string) *domain.Settings {
	return &domain.Settings{
		ProjectRoot: root,
		Executable:  domain.DefaultExecutable,
		Properties:  map[string]string{},
		CachePath:   DefaultCachePath(root),
	}
}

// DefaultCachePath returns <user cache dir>/jarpath/<project key>.json.
func DefaultCachePath(root string) string {
	return filepath.Join(domain.DefaultCacheDir(), fs.ProjectKey(root)+".json")
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// resolvePath expands a leading ~ and anchors relative paths at root.
func resolvePath(root, path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(root, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by the loader
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read"), "path", configPath))
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(parseErr, "unmarshal"), "path", configPath))
	}

	return nil
}
