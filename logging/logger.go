package logging

import "go.uber.org/zap"

// New returns the sugared form of the global zap logger, so background jobs log
// through whatever config.New installed.
func New() *zap.SugaredLogger {
	return zap.L().Sugar()
}

// Named returns a child logger tagged with the component name
func Named(component string) *zap.SugaredLogger {
	return New().Named(component)
}
