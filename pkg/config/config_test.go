package config_test

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/treeverse/ringview/pkg/config"
	"github.com/treeverse/ringview/pkg/logging"
	"github.com/treeverse/ringview/pkg/ring"
	"github.com/treeverse/ringview/pkg/seq"
	"github.com/treeverse/ringview/pkg/testutil"
)

func newConfigFromFile(t *testing.T, fn string) (*config.Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	if fn != "" {
		viper.SetConfigFile(fn)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return config.NewConfig()
}

func TestConfig_Defaults(t *testing.T) {
	c, err := newConfigFromFile(t, "")
	testutil.Must(t, err)
	require.Equal(t, ring.Unbounded, c.RingCount())
	require.Equal(t, config.DefaultRingTake, c.Ring.Take)
	require.Equal(t, config.SourceSlice, c.Ring.Source)
	require.Equal(t, config.Strings{"-"}, c.Logging.Output)
	if diffs := deep.Equal(c.Bench.Tiers, []seq.Tier{seq.TierInput, seq.TierForward, seq.TierBidirectional, seq.TierRandomAccess}); diffs != nil {
		t.Fatalf("default bench tiers: %s", diffs)
	}
}

func TestConfig_NewFromFile(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		c, err := newConfigFromFile(t, "testdata/valid_config.yaml")
		testutil.Must(t, err)
		require.Equal(t, ring.Bounded(3), c.RingCount())
		require.Equal(t, 7, c.Ring.Take)
		require.Equal(t, 2, c.Ring.Drop)
		require.Equal(t, config.SourceList, c.Ring.Source)
		require.Equal(t, 16, c.Ring.MemoizeSize)
		require.Equal(t, 0.5, c.Bench.SampleRatio)
		if diffs := deep.Equal(c.Bench.Tiers, []seq.Tier{seq.TierForward, seq.TierRandomAccess}); diffs != nil {
			t.Fatalf("bench tiers: %s", diffs)
		}
		require.Equal(t, "debug", logging.Level())
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := newConfigFromFile(t, "testdata/invalid_config.yaml")
		if err == nil || !strings.HasPrefix(err.Error(), "While parsing config:") {
			t.Fatalf("expected invalid configuration file to fail, got %v", err)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := newConfigFromFile(t, "testdata/valid_configgggggggggggggggg.yaml")
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected missing configuration file to fail, got %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := newConfigFromFile(t, "testdata/unknown_key.yaml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "speed")
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := newConfigFromFile(t, "testdata/unknown_source.yaml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown source kind")
	})
}

func TestConfig_Validate(t *testing.T) {
	_, err := newConfigFromFile(t, "testdata/invalid_values.yaml")
	require.ErrorIs(t, err, config.ErrBadConfiguration)
	for _, expected := range []error{config.ErrBadRingTimes, config.ErrBadTake, config.ErrBadBench, config.ErrBadSampleRatio} {
		if !errors.Is(err, expected) {
			t.Errorf("got error %s, expected it to include %s", err, expected)
		}
	}
}

func TestConfig_UnboundedWithoutTake(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set(config.RingTakeKey, 0)
	c, err := config.NewConfig()
	testutil.MustDo(t, "load config without ring.take", err)
	require.Equal(t, ring.Unbounded, c.RingCount())
	require.Equal(t, 0, c.Ring.Take)
}

func pushEnv(t *testing.T, key, value string) {
	oldValue, ok := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, oldValue)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestConfig_EnvironmentVariables(t *testing.T) {
	pushEnv(t, "RINGCTL_RING_TIMES", "5")
	pushEnv(t, "RINGCTL_BENCH_TIERS", "bidirectional")

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetEnvPrefix("RINGCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // support nested config
	viper.AutomaticEnv()

	c, err := config.NewConfig()
	testutil.Must(t, err)
	require.Equal(t, ring.Bounded(5), c.RingCount())
	require.Equal(t, []seq.Tier{seq.TierBidirectional}, c.Bench.Tiers)
}

func TestConfig_JSONLogger(t *testing.T) {
	logfile := "/tmp/ringview_json_logger_test.log"
	_ = os.Remove(logfile)
	_, err := newConfigFromFile(t, "testdata/json_logger_config.yaml")
	testutil.Must(t, err)
	t.Cleanup(func() {
		_ = logging.SetOutputs([]string{"-"}, 0, 0)
		_ = os.Remove(logfile)
	})

	logging.Default().Info("some message that I should be looking for")

	content, err := os.Open(logfile)
	if err != nil {
		t.Fatalf("unexpected error reading log file: %s", err)
	}
	defer func() {
		_ = content.Close()
	}()
	reader := bufio.NewReader(content)
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("could not read line from logfile: %s", err)
	}
	m := make(map[string]string)
	err = json.Unmarshal([]byte(line), &m)
	if err != nil {
		t.Fatalf("could not parse JSON line from logfile: %s", err)
	}
	if _, ok := m["msg"]; !ok {
		t.Fatalf("expected a msg field, could not find one")
	}
}

func TestParseSourceKind(t *testing.T) {
	for _, k := range config.SourceKinds {
		parsed, err := config.ParseSourceKind(strings.ToUpper(string(k)))
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	_, err := config.ParseSourceKind("tree")
	require.ErrorIs(t, err, config.ErrUnknownSource)
}
