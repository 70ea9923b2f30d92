//go:build !windows

package logging

import (
	"fmt"
	"log/syslog"
	"strings"

	lSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// EnableSyslog adds a hook mirroring log entries to the local syslog at the
// given level. An empty level leaves syslog disabled.
func EnableSyslog(level string) error {
	var priority syslog.Priority
	switch strings.ToLower(level) {
	case "":
		return nil
	// There's no syslog level for trace, using debug instead.
	case "trace", "debug":
		priority = syslog.LOG_DEBUG
	case "info":
		priority = syslog.LOG_INFO
	case "warn", "warning":
		priority = syslog.LOG_WARNING
	case "error":
		priority = syslog.LOG_ERR
	case "panic", "null", "none":
		priority = syslog.LOG_CRIT
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSyslogLevel, level)
	}
	hook, err := lSyslog.NewSyslogHook("", "", priority, ModuleName)
	if err != nil {
		return fmt.Errorf("syslog hook: %w", err)
	}
	defaultLogger.AddHook(hook)
	return nil
}
