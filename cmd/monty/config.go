// This file is part of monty - https://github.com/ayoubhayoune/monty
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/BurntSushi/toml"
	"github.com/ayoubhayoune/monty/vm"
	"github.com/pkg/errors"
)

// config holds the interpreter settings that can be read from a TOML file.
type config struct {
	Trace    bool   `toml:"trace"`
	Debug    bool   `toml:"debug"`
	Dump     bool   `toml:"dump"`
	Mode     string `toml:"mode"`
	MaxDepth int    `toml:"max-depth"`
}

func defaultConfig() *config {
	return &config{Mode: vm.StackMode.String()}
}

// loadConfig reads settings from the given TOML file. Keys missing from the
// file keep their default value. Unknown keys are an error.
func loadConfig(fileName string) (*config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(fileName, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", fileName)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return nil, errors.Errorf("failed to load config %s: unknown key %q", fileName, u[0].String())
	}
	return cfg, nil
}

// options converts the settings to VM options.
func (c *config) options() ([]vm.Option, error) {
	m, err := vm.ParseMode(c.Mode)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return []vm.Option{vm.StartMode(m), vm.MaxDepth(c.MaxDepth)}, nil
}
