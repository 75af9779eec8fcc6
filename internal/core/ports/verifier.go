package ports

// Verifier defines the interface for checking classpath entries against the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyFiles reports whether every path exists as a regular file.
	VerifyFiles(paths []string) (bool, error)
}
