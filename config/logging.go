// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pandemaniac/seeding"
	log "github.com/sirupsen/logrus"
)

// NewLogger builds the process logger from the log settings.
func NewLogger(c Log, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", seeding.ErrConfiguration, KeyLogLevel, err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	if c.Format == FormatJSON {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return logger, nil
}
