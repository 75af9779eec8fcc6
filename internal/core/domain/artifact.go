package domain

// PomExtension is the file extension marking an artifact as present in the local repository.
const PomExtension = "pom"

// LocalArtifact describes the files of one artifact found in the local artifact storage root.
type LocalArtifact struct {
	// Coordinate is the artifact the directory belongs to.
	Coordinate Coordinate

	// Dir is the absolute path of the artifact's version directory.
	Dir string

	// POM is the absolute path of "<artifact>-<version>.pom", empty when absent.
	POM string

	// Archive is the absolute path of Coordinate.FileName(), empty when absent.
	Archive string

	// Files maps the extension after "<artifact>-<version>." (e.g., "jar", "pom", "jar.sha1")
	// to the absolute path of that file.
	Files map[string]string
}

// Present reports whether the artifact's descriptor has been fetched.
func (a LocalArtifact) Present() bool {
	return a.POM != ""
}

// File returns the path stored for the given extension.
func (a LocalArtifact) File(ext string) (string, bool) {
	path, ok := a.Files[ext]
	return path, ok
}
