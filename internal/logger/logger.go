package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger for the given server mode and installs it
// as the zap global so packages can log through zap.L().
func New(mode string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	switch mode {
	case "release":
		l, err = zap.NewProduction()
	case "test":
		l = zap.NewNop()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
