package logging

import "go.uber.org/zap"

// New builds the process logger. Components receive it by reference rather
// than through a package-level global.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
