/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

type operation int

const (
	opKth operation = iota
	opTopK
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "orderstat",
		Short:         "Exact order statistics of a list of numbers",
		Long:          `orderstat reads whitespace separated numbers and prints the k-th largest of them, or the k largest in descending order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	rootCmd.PersistentFlags().String("config", "", "Configuration file (toml, yaml or json)")
	rootCmd.PersistentFlags().String("input", "", "Input file, stdin when empty or -")
	rootCmd.PersistentFlags().Int("k", 1, "Rank, 1 is the largest")
	rootCmd.PersistentFlags().String("method", defaultMethod, "Algorithm: "+strings.Join(methodNames(), ", "))
	rootCmd.PersistentFlags().Bool("float", false, "Parse input as 64-bit floats instead of integers")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print detailed execution info")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: panic, fatal, error, warn, info, debug, trace")

	rootCmd.AddCommand(
		newOpCmd("kth", "Print the k-th largest number", opKth),
		newOpCmd("topk", "Print the k largest numbers in descending order", opTopK),
		&cobra.Command{
			Use:   "version",
			Short: "Print the orderstat version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "orderstat "+Version)
			},
		},
	)
	return rootCmd
}

func newOpCmd(use string, short string, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := initLog(cmd, conf); err != nil {
				return err
			}
			in, err := openInput(conf.Input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			if conf.Float {
				values, err := readValues(in, parseFloat)
				if err != nil {
					return err
				}
				return run(cmd.OutOrStdout(), floatMethods[conf.Method], op, values, conf)
			}
			values, err := readValues(in, parseInt)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), intMethods[conf.Method], op, values, conf)
		},
	}
}

func run[T cmp.Ordered](out io.Writer, m method[T], op operation, values []T, conf config) error {
	fields := log.Fields{
		"method": conf.Method,
		"n":      len(values),
		"k":      conf.K,
	}
	start := time.Now()
	switch op {
	case opKth:
		v, err := m.kth(values, conf.K)
		if err != nil {
			return err
		}
		log.WithFields(fields).WithField("elapsed", time.Since(start)).Debug("Selected k-th largest")
		_, err = fmt.Fprintln(out, v)
		return err
	default:
		top := m.topK(values, conf.K)
		log.WithFields(fields).WithField("elapsed", time.Since(start)).Debug("Selected top k")
		parts := make([]string, len(top))
		for i, v := range top {
			parts[i] = fmt.Sprint(v)
		}
		_, err := fmt.Fprintln(out, strings.Join(parts, " "))
		return err
	}
}
