package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetVerbose enables debug output.
	SetVerbose(verbose bool)

	// SetJSON switches to structured JSON output.
	SetJSON(enable bool)
}
