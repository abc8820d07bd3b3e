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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/pattern"
	"github.com/dolthub/go-sqlopt/rules"
)

func newGraph() *analysis.Graph { return egraph.New[analysis.Data](analysis.ExprAnalysis{}) }

func insert(t *testing.T, g *analysis.Graph, s string) egraph.Id {
	t.Helper()
	r, err := expr.Parse(s)
	require.NoError(t, err)
	return expr.Insert(g, r)
}

func TestNewDefaultUsesDefaultLimitsAndAllRules(t *testing.T) {
	o := NewDefault()
	require.Equal(t, pattern.DefaultLimits(), o.Limits)
	require.Equal(t, len(rules.AllRules()), len(o.Rules))
}

func TestRunSaturationReducesAddZero(t *testing.T) {
	o := NewDefault()
	g := newGraph()
	id := insert(t, g, "(+ a 0)")
	lit := insert(t, g, "a")

	o.RunSaturation(context.Background(), g)
	require.Equal(t, g.Find(id), g.Find(lit))
}

func TestPlanSelectForwardsToAggregatePlanner(t *testing.T) {
	o := NewDefault()
	g := newGraph()
	from := insert(t, g, "(scan t (list a b))")
	where := insert(t, g, "true")
	having := insert(t, g, "true")
	groupby := insert(t, g, "(list)")
	orderby := insert(t, g, "(list)")
	proj := insert(t, g, "(list a b)")

	root, err := o.PlanSelect(context.Background(), g, from, where, having, groupby, orderby, proj)
	require.NoError(t, err)
	_, ok := g.Nodes(root)[0].(expr.Proj)
	require.True(t, ok)
}

func TestLoadConfigDecodesLimitsFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.toml")
	contents := "max_iterations = 5\nmax_nodes = 100\nmax_time_millis = 250\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Limits.MaxIterations)
	require.Equal(t, 100, cfg.Limits.MaxNodes)
}

func TestLoadConfigWrapsDecodeFailure(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
