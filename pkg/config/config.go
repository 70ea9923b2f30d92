package config

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"github.com/treeverse/ringview/pkg/logging"
	"github.com/treeverse/ringview/pkg/ring"
	"github.com/treeverse/ringview/pkg/seq"
)

var (
	ErrBadConfiguration = errors.New("bad configuration")
	ErrUnknownSource    = fmt.Errorf("%w: unknown source kind", ErrBadConfiguration)
	ErrBadRingTimes     = fmt.Errorf("%w: ring.times must be -1 (unbounded) or non-negative", ErrBadConfiguration)
	ErrBadTake          = fmt.Errorf("%w: ring.take and ring.drop must be non-negative", ErrBadConfiguration)
	ErrUnboundedOutput  = fmt.Errorf("%w: an unbounded ring needs ring.take", ErrBadConfiguration)
	ErrBadBench         = fmt.Errorf("%w: bench sizes must be positive", ErrBadConfiguration)
	ErrBadSampleRatio   = fmt.Errorf("%w: bench.sample_ratio must be in (0, 1]", ErrBadConfiguration)
)

type Config struct {
	Logging struct {
		Format        string  `mapstructure:"format"`
		Level         string  `mapstructure:"level"`
		Output        Strings `mapstructure:"output"`
		FileMaxSizeMB int     `mapstructure:"file_max_size_mb"`
		FilesKeep     int     `mapstructure:"files_keep"`
		SyslogLevel   string  `mapstructure:"syslog_level"`
		ReportCaller  bool    `mapstructure:"report_caller"`
	} `mapstructure:"logging"`
	Ring struct {
		// Times is the number of passes, -1 repeats forever.
		Times       int        `mapstructure:"times"`
		Take        int        `mapstructure:"take"`
		Drop        int        `mapstructure:"drop"`
		Source      SourceKind `mapstructure:"source"`
		MemoizeSize int        `mapstructure:"memoize_size"`
	} `mapstructure:"ring"`
	Bench struct {
		Iterations  int        `mapstructure:"iterations"`
		PassSize    int        `mapstructure:"pass_size"`
		Times       int        `mapstructure:"times"`
		SampleRatio float64    `mapstructure:"sample_ratio"`
		Tiers       []seq.Tier `mapstructure:"tiers"`
	} `mapstructure:"bench"`
}

// NewConfig reads the configuration currently loaded into viper, validates
// it and sets up logging accordingly.
func NewConfig() (*Config, error) {
	c := &Config{}
	setDefaults()

	err := viper.UnmarshalExact(c, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			DecodeStrings,
			DecodeTiers,
			DecodeTier,
			DecodeSourceKind,
		)))
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.setupLogger(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	if c.Ring.Times < -1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: got %d", ErrBadRingTimes, c.Ring.Times))
	}
	if c.Ring.Take < 0 || c.Ring.Drop < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: take %d drop %d", ErrBadTake, c.Ring.Take, c.Ring.Drop))
	}
	if c.Bench.Iterations <= 0 || c.Bench.PassSize <= 0 || c.Bench.Times <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: iterations %d pass size %d times %d",
			ErrBadBench, c.Bench.Iterations, c.Bench.PassSize, c.Bench.Times))
	}
	if c.Bench.SampleRatio <= 0 || c.Bench.SampleRatio > 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: got %g", ErrBadSampleRatio, c.Bench.SampleRatio))
	}
	return errs.ErrorOrNil()
}

// RingCount is the repeat count selected by ring.times.
func (c *Config) RingCount() ring.Count {
	if c.Ring.Times < 0 {
		return ring.Unbounded
	}
	return ring.Bounded(c.Ring.Times)
}

func (c *Config) ToLoggerFields() logging.Fields {
	return logging.Fields{
		RingTimesKey:        c.RingCount().String(),
		RingTakeKey:         c.Ring.Take,
		RingDropKey:         c.Ring.Drop,
		RingSourceKey:       c.Ring.Source,
		RingMemoizeSizeKey:  c.Ring.MemoizeSize,
		BenchIterationsKey:  c.Bench.Iterations,
		BenchPassSizeKey:    c.Bench.PassSize,
		BenchTimesKey:       c.Bench.Times,
		BenchSampleRatioKey: c.Bench.SampleRatio,
	}
}
