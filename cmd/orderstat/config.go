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
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "orderstat"

type config struct {
	ConfigFile string
	Input      string
	K          int
	Method     string
	Float      bool
	Verbose    bool
	LogLevel   string
}

// loadConfig merges, lowest priority first: defaults, the config file,
// ORDERSTAT_* environment variables and command line flags.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	conf := config{
		ConfigFile: v.GetString("config"),
		Input:      v.GetString("input"),
		K:          v.GetInt("k"),
		Method:     v.GetString("method"),
		Float:      v.GetBool("float"),
		Verbose:    v.GetBool("verbose"),
		LogLevel:   v.GetString("log-level"),
	}
	if _, ok := intMethods[conf.Method]; !ok {
		return config{}, fmt.Errorf("unknown method %q, want one of %s", conf.Method, strings.Join(methodNames(), ", "))
	}
	return conf, nil
}

func initLog(cmd *cobra.Command, conf config) error {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	if conf.Verbose && level < log.DebugLevel {
		level = log.DebugLevel
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
