package main

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/treearray/internal/zaptrace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Configuration keys
const (
	keyAdapter    = "tracing.adapter"
	keyTraceLevel = "tracelevel.root"
	keyTrials     = "bench.trials"
	keyWarmup     = "bench.warmup"
	keySize       = "bench.size"
	keyInserts    = "bench.inserts"
	keyDB         = "history.db"
	keyCommand    = "watch.command"
	keyIgnore     = "watch.ignore"
	keyToolchain  = "watch.toolchain"
)

var defaults = map[string]interface{}{
	keyAdapter:    zaptrace.Key,
	keyTraceLevel: "Error",
	keyTrials:     5,
	keyWarmup:     1,
	keySize:       100_000,
	keyInserts:    1000,
	keyDB:         "seqbench.db",
	keyCommand:    "go test ./...",
	keyIgnore:     ".git,.git/**",
	keyToolchain:  "",
}

// flagKeys binds command line flags to configuration keys. A flag given on the
// command line overrides a configured value.
var flagKeys = map[string]string{
	"tracer":    keyAdapter,
	"trace":     keyTraceLevel,
	"trials":    keyTrials,
	"warmup":    keyWarmup,
	"size":      keySize,
	"inserts":   keyInserts,
	"db":        keyDB,
	"cmd":       keyCommand,
	"ignore":    keyIgnore,
	"toolchain": keyToolchain,
}

// settings wraps the configuration for sub-commands.
type settings struct {
	conf *koanfadapter.KConf
}

// setup loads the configuration, applies flags and configures tracing.
func setup(cmd *cobra.Command) (*settings, error) {
	zaptrace.Register()
	conf := koanfadapter.New(koanf.New("."), "seqbench", []string{"nt"})
	conf.InitDefaults()
	for key, value := range defaults {
		// InitDefaults presets the Go log adapter; we prefer zap
		if !conf.IsSet(key) || (key == keyAdapter && conf.GetString(key) == "go") {
			conf.Set(key, value)
		}
	}
	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		switch f.Value.Type() {
		case "int":
			var n int
			n, err = cmd.Flags().GetInt(f.Name)
			conf.Set(key, n)
		case "stringSlice":
			var list []string
			list, err = cmd.Flags().GetStringSlice(f.Name)
			conf.Set(key, strings.Join(list, ","))
		default:
			conf.Set(key, f.Value.String())
		}
	})
	if err != nil {
		return nil, err
	}
	trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true))
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("configuration: trials=%d size=%d inserts=%d",
		conf.GetInt(keyTrials), conf.GetInt(keySize), conf.GetInt(keyInserts))
	return &settings{conf: conf}, nil
}

func (s *settings) int(key string) int {
	return s.conf.GetInt(key)
}

func (s *settings) string(key string) string {
	return s.conf.GetString(key)
}

func (s *settings) list(key string) []string {
	var list []string
	for _, item := range strings.Split(s.conf.GetString(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// tracer writes to trace with key 'seqbench'
func tracer() tracing.Trace {
	return tracing.Select("seqbench")
}
