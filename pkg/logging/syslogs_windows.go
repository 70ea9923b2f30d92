package logging

import "fmt"

func EnableSyslog(level string) error {
	if level == "" {
		return nil
	}
	return fmt.Errorf("%w: syslog is not available on windows", ErrUnknownSyslogLevel)
}
