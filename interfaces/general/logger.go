// Package general holds interfaces shared by every layer of the service.
package general

// Logger is the logging surface each component receives.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
