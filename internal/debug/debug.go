package debug

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once   sync.Once
	logger *logrus.Logger
)

// Log writes a formatted debug message to the file named by STDINMUTE_DEBUG.
// When the variable is unset or the file cannot be opened, Log does nothing.
func Log(format string, args ...any) {
	once.Do(setup)
	logger.Debugf(format, args...)
}

func setup() {
	logger = logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)

	path := os.Getenv("STDINMUTE_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
