package config

import (
	"github.com/treeverse/ringview/pkg/logging"
)

func (c *Config) setupLogger() error {
	// set output format
	logging.SetOutputFormat(c.Logging.Format)

	// set outputs
	if err := logging.SetOutputs(c.Logging.Output, c.Logging.FileMaxSizeMB, c.Logging.FilesKeep); err != nil {
		return err
	}

	// set level
	logging.SetLevel(c.Logging.Level)
	logging.SetReportCaller(c.Logging.ReportCaller)

	return logging.EnableSyslog(c.Logging.SyslogLevel)
}
