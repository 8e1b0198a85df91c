package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "TREEDEMO"

type config struct {
	Values    []int
	Remove    []int
	Probe     []int
	Threshold int
	Variants  []string
	LogLevel  zerolog.Level
	Plain     bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	// every flag can also be set as TREEDEMO_<FLAG>, with '-' replaced by '_'.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "treedemo",
		Short:         "Exercise the linked, array and immutable trees",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			d := newDemo(cmd.OutOrStdout(), newLogger(cmd, cfg), cfg)
			return d.runAll()
		},
	}

	f := cmd.Flags()
	f.String("values", "1,5,13,-3,-7,-4,3", "comma separated values to add")
	f.String("remove", "1,6", "comma separated values to remove")
	f.String("probe", "1,7", "comma separated values to look up")
	f.Int("threshold", 3, "predicate threshold for Exists, FindAll and CheckForAll")
	f.String("variants", "array,linked,immutable", "comma separated variants to run")
	f.String("log-level", "info", "zerolog level")
	f.Bool("plain", false, "disable styling")
	if err := v.BindPFlags(f); err != nil {
		panic(fmt.Sprintf("failed to bind flags %s", err.Error()))
	}
	return cmd
}

func loadConfig(v *viper.Viper) (cfg config, err error) {
	if cfg.Values, err = parseInts(v.GetString("values")); err != nil {
		return cfg, fmt.Errorf("values: %w", err)
	}
	if cfg.Remove, err = parseInts(v.GetString("remove")); err != nil {
		return cfg, fmt.Errorf("remove: %w", err)
	}
	if cfg.Probe, err = parseInts(v.GetString("probe")); err != nil {
		return cfg, fmt.Errorf("probe: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(v.GetString("log-level")); err != nil {
		return cfg, err
	}
	for _, s := range splitList(v.GetString("variants")) {
		switch s {
		case variantArray, variantLinked, variantImmutable:
			cfg.Variants = append(cfg.Variants, s)
		default:
			return cfg, fmt.Errorf("unknown variant %q", s)
		}
	}
	cfg.Threshold = v.GetInt("threshold")
	cfg.Plain = v.GetBool("plain")
	return cfg, nil
}

func splitList(s string) []string {
	var r []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			r = append(r, p)
		}
	}
	return r
}

func parseInts(s string) ([]int, error) {
	var r []int
	for _, p := range splitList(s) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		r = append(r, n)
	}
	return r, nil
}

func newLogger(cmd *cobra.Command, cfg config) zerolog.Logger {
	w := cmd.ErrOrStderr()
	noColor := cfg.Plain
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		noColor = true
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()
}
