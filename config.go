// Copyright 2020-2021 Dolthub, Inc.
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

package sqlopt

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/dolthub/go-sqlopt/pattern"
	"github.com/dolthub/go-sqlopt/rules"
)

// Config for the Optimizer.
type Config struct {
	// Limits bounds a saturation run. Zero value means DefaultLimits.
	Limits pattern.Limits
	// Rules is the rule set run to saturation. Zero value means AllRules().
	Rules []pattern.Rewrite
}

// limitsFile is the shape of the optional TOML config file: a flat table of
// the three Limits fields, matching pattern.Limits by name.
type limitsFile struct {
	MaxIterations int   `toml:"max_iterations"`
	MaxNodes      int   `toml:"max_nodes"`
	MaxTimeMillis int64 `toml:"max_time_millis"`
}

// LoadConfig reads a saturation resource cap from a TOML file at path and
// returns a Config carrying it with the default rule set. A missing or
// malformed file is reported as an error rather than silently falling back,
// so a typo'd path doesn't quietly run with defaults; callers that want the
// zero-I/O path should use NewDefault instead of LoadConfig.
func LoadConfig(path string) (*Config, error) {
	var lf limitsFile
	if _, err := toml.DecodeFile(path, &lf); err != nil {
		return nil, errors.Wrap(err, "unable to decode saturation config: "+path)
	}

	limits := pattern.DefaultLimits()
	if lf.MaxIterations > 0 {
		limits.MaxIterations = lf.MaxIterations
	}
	if lf.MaxNodes > 0 {
		limits.MaxNodes = lf.MaxNodes
	}
	if lf.MaxTimeMillis > 0 {
		limits.MaxTime = time.Duration(lf.MaxTimeMillis) * time.Millisecond
	}

	return &Config{Limits: limits, Rules: rules.AllRules()}, nil
}
