/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log configures the global logrus logger.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/moby/term"
	"github.com/sirupsen/logrus"
)

// LevelNames are the accepted values for SetupGlobalLogger.
var LevelNames = []string{
	logrus.TraceLevel.String(),
	logrus.DebugLevel.String(),
	logrus.InfoLevel.String(),
	logrus.WarnLevel.String(),
	logrus.ErrorLevel.String(),
	logrus.FatalLevel.String(),
	logrus.PanicLevel.String(),
}

// SetupGlobalLogger sets the level of the global logger and installs a text
// formatter writing to stderr.
func SetupGlobalLogger(level string) error {
	return setup(logrus.StandardLogger(), os.Stderr, level)
}

func setup(logger *logrus.Logger, out io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setting log level to %s: %w", level, err)
	}

	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   isTerminal(out),
	})
	if lvl >= logrus.DebugLevel {
		logger.Debugf("Log level set to %s", lvl)
	}
	return nil
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	fd, ok := term.GetFdInfo(w)
	return ok && term.IsTerminal(fd)
}
