// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// probstat describes data sets and evaluates probability
// distributions and events from the command line.
//
//	probstat describe data.csv --column height --confidence 0.99
//	probstat describe --lines - < numbers.txt
//	probstat dist binomial --n 10 --p 0.5 --x 3
//	probstat dist normal --mean 0 --std 1 --x -1 --x2 1
//	probstat event --space 1,2,3,4,5,6 --a 2,4,6 --b 4,5,6
package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd(log).Execute(); err != nil {
		entry := log.WithError(err)
		if hint := errors.FlattenHints(err); hint != "" {
			entry = entry.WithField("hint", hint)
		}
		entry.Error("probstat failed")
		os.Exit(1)
	}
}

// app is the state shared by all subcommands once flags and the
// config file have been read.
type app struct {
	log *logrus.Logger
	cfg Config

	configPath string
	logLevel   string
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	a := &app{log: log, cfg: DefaultConfig()}
	root := &cobra.Command{
		Use:           "probstat",
		Short:         "Descriptive statistics and probability distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config `file`")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log `level` (overrides config)")

	root.AddCommand(newDescribeCmd(a), newDistCmd(a), newEventCmd(a))
	return root
}

// setup loads the config file and applies it to the logger.
func (a *app) setup() error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	a.log.SetLevel(lvl)
	a.log.WithFields(logrus.Fields{
		"config":     a.configPath,
		"confidence": cfg.Confidence,
		"precision":  cfg.Precision,
	}).Debug("configured")
	return nil
}
