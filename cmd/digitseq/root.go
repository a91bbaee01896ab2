// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/keep94/digitseq/internal/logging"
	"github.com/keep94/digitseq/position"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	config  *viper.Viper
	stdin   io.Reader
	logger  *logging.Logger
	finder  *position.Finder
	printer *printer
}

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DIGITSEQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.group", false)
	v.SetDefault("batch.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("batch.rate", 0.0)
	return v
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{config: newConfig(), stdin: stdin}
	var configFile string
	root := &cobra.Command{
		Use:          "digitseq",
		Short:        "Locate digit strings in 123456789101112...",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(configFile, stdout, stderr)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.Bool("group", false, "group the digits of numbers in text output")
	bindFlag(a.config, "log.level", flags, "log-level")
	bindFlag(a.config, "log.format", flags, "log-format")
	bindFlag(a.config, "output.format", flags, "output")
	bindFlag(a.config, "output.group", flags, "group")

	root.AddCommand(
		a.indexCommand(),
		a.findCommand(),
		a.digitCommand(),
		a.batchCommand(),
		a.crosscheckCommand(),
	)
	return root
}

func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

// load reads the optional config file and builds the logger, finder and
// printer from the merged settings.
func (a *app) load(configFile string, stdout, stderr io.Writer) error {
	if configFile != "" {
		a.config.SetConfigFile(configFile)
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	logger, err := logging.New(stderr, a.config.GetString("log.format"), a.config.GetString("log.level"))
	if err != nil {
		return err
	}
	p, err := newPrinter(stdout, a.config.GetString("output.format"), a.config.GetBool("output.group"))
	if err != nil {
		return err
	}
	a.logger = logger
	a.finder = position.NewFinder(position.WithLogger(logger.Logger))
	a.printer = p
	return nil
}
