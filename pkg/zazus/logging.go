package zazus

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	return nil
}
