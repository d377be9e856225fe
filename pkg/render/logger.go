package render

import "fmt"

// DefaultLogger implements core.Logger by writing to stdout via fmt.Printf,
// matching the teacher's renderer.DefaultLogger.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger returns the stdout logger used by cmd/pathtracer when no
// other core.Logger is supplied.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}
