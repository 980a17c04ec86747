package logger

import (
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
)

var once sync.Once

// Setup configures the process-wide apex/log handler. Output is one JSON
// object per line on stdout so log lines can be shipped as-is.
func Setup(level string) {
	once.Do(func() {
		log.SetHandler(json.New(os.Stdout))
		lvl, err := log.ParseLevel(level)
		if err != nil {
			lvl = log.InfoLevel
		}
		log.SetLevel(lvl)
	})
}

// Component returns an entry tagged with the owning component name.
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}
