package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logg = newLogger()
	mu   sync.Mutex
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)
	return l
}

func GetLogger() *logrus.Logger {
	return logg
}

// Configure sets the level and, when file is not empty, tees output into a
// rotated log file.
func Configure(level, file string) {
	mu.Lock()
	defer mu.Unlock()

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logg.SetLevel(lvl)
	}
	if file != "" {
		logg.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}))
	}
}

// For returns an entry tagged with the module and layer emitting it.
func For(module, layer string) *logrus.Entry {
	return logg.WithFields(logrus.Fields{
		"module": module,
		"layer":  layer,
	})
}
