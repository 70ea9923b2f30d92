package config

import "github.com/spf13/viper"

const (
	LoggingFormatKey        = "logging.format"
	LoggingLevelKey         = "logging.level"
	LoggingOutputKey        = "logging.output"
	LoggingFileMaxSizeMBKey = "logging.file_max_size_mb"
	LoggingFilesKeepKey     = "logging.files_keep"
	LoggingSyslogLevelKey   = "logging.syslog_level"
	LoggingReportCallerKey  = "logging.report_caller"

	RingTimesKey       = "ring.times"
	RingTakeKey        = "ring.take"
	RingDropKey        = "ring.drop"
	RingSourceKey      = "ring.source"
	RingMemoizeSizeKey = "ring.memoize_size"

	BenchIterationsKey  = "bench.iterations"
	BenchPassSizeKey    = "bench.pass_size"
	BenchTimesKey       = "bench.times"
	BenchSampleRatioKey = "bench.sample_ratio"
	BenchTiersKey       = "bench.tiers"
)

const (
	DefaultLoggingFormat        = "text"
	DefaultLoggingLevel         = "INFO"
	DefaultLoggingOutput        = "-"
	DefaultLoggingFileMaxSizeMB = 100
	DefaultLoggingFilesKeep     = 100

	// DefaultRingTimes repeats forever; take bounds the output.
	DefaultRingTimes  = -1
	DefaultRingTake   = 20
	DefaultRingSource = SourceSlice

	DefaultBenchIterations  = 1000
	DefaultBenchPassSize    = 64
	DefaultBenchTimes       = 16
	DefaultBenchSampleRatio = 1.0
	DefaultBenchTiers       = "input,forward,bidirectional,random-access"
)

func setDefaults() {
	viper.SetDefault(LoggingFormatKey, DefaultLoggingFormat)
	viper.SetDefault(LoggingLevelKey, DefaultLoggingLevel)
	viper.SetDefault(LoggingOutputKey, DefaultLoggingOutput)
	viper.SetDefault(LoggingFileMaxSizeMBKey, DefaultLoggingFileMaxSizeMB)
	viper.SetDefault(LoggingFilesKeepKey, DefaultLoggingFilesKeep)
	viper.SetDefault(LoggingSyslogLevelKey, "")
	viper.SetDefault(LoggingReportCallerKey, false)

	viper.SetDefault(RingTimesKey, DefaultRingTimes)
	viper.SetDefault(RingTakeKey, DefaultRingTake)
	viper.SetDefault(RingDropKey, 0)
	viper.SetDefault(RingSourceKey, string(DefaultRingSource))
	viper.SetDefault(RingMemoizeSizeKey, 0)

	viper.SetDefault(BenchIterationsKey, DefaultBenchIterations)
	viper.SetDefault(BenchPassSizeKey, DefaultBenchPassSize)
	viper.SetDefault(BenchTimesKey, DefaultBenchTimes)
	viper.SetDefault(BenchSampleRatioKey, DefaultBenchSampleRatio)
	viper.SetDefault(BenchTiersKey, DefaultBenchTiers)
}
