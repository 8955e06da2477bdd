// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads [xyz.Options] from TOML or YAML files and
// from TFVIEW_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tfview/frame"
	"cogentcore.org/tfview/xyz"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables read by [ParseEnv].
const EnvPrefix = "TFVIEW_"

// ErrUnknownFormat is returned by [Open] for a file extension
// other than .toml, .yaml and .yml.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Open reads the given TOML or YAML file into opts, choosing the format
// from the file extension. Fields absent from the file are left unchanged.
func Open(filename string, opts *xyz.Options) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, opts)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// ParseEnv applies the TFVIEW_ environment variables to opts;
// for example TFVIEW_FOV sets the field of view.
func ParseEnv(opts *xyz.Options) error {
	if err := env.ParseWithOptions(opts, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Load returns the options from the given file, if it is not empty,
// overridden by the environment, with defaults set and validated.
// The port is the frame subscription port, which cannot come from a file.
func Load(filename string, port frame.Port) (xyz.Options, error) {
	opts := xyz.Options{Port: port}
	if filename != "" {
		if err := Open(filename, &opts); err != nil {
			return opts, err
		}
	}
	if err := ParseEnv(&opts); err != nil {
		return opts, err
	}
	opts.Defaults()
	return opts, opts.Validate()
}
