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

// Package sqlopt is the library entry point: it wires the e-graph kernel,
// the analyses, the rule bundles and the aggregate planner into a single
// Optimizer, analogous to how a query engine wires a catalog, an analyzer
// and a rule-based query planner into one type. This Optimizer never
// touches a network or a session: RunSaturation and PlanSelect take an
// already-built e-graph and return an e-class id for an external,
// cost-based extractor (out of scope here) to turn into a concrete plan.
package sqlopt

import (
	"context"

	"github.com/dolthub/go-sqlopt/aggplan"
	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/pattern"
	"github.com/dolthub/go-sqlopt/rules"
)

// Optimizer runs a configured rule set to saturation against a caller-owned
// e-graph and lowers six-clause SELECTs into plan trees.
type Optimizer struct {
	Limits pattern.Limits
	Rules  []pattern.Rewrite
	runner *pattern.Runner
}

// New creates an Optimizer with custom configuration. To create one with
// the default rule set and limits use NewDefault.
func New(cfg *Config) *Optimizer {
	if cfg == nil {
		cfg = &Config{}
	}
	limits := cfg.Limits
	if limits == (pattern.Limits{}) {
		limits = pattern.DefaultLimits()
	}
	rs := cfg.Rules
	if rs == nil {
		rs = rules.AllRules()
	}
	return &Optimizer{
		Limits: limits,
		Rules:  rs,
		runner: pattern.NewRunner(limits),
	}
}

// NewDefault creates an Optimizer with DefaultLimits and AllRules.
func NewDefault() *Optimizer {
	return New(nil)
}

// RunSaturation drives o's rule set against g until saturation or a Limits
// ceiling, returning why it stopped.
func (o *Optimizer) RunSaturation(ctx context.Context, g *analysis.Graph) pattern.StopReason {
	return o.runner.Run(ctx, g, o.Rules)
}

// PlanSelect lowers a six-clause SELECT into a plan tree rooted at Proj,
// forwarding to the aggregate planner.
func (o *Optimizer) PlanSelect(ctx context.Context, g *analysis.Graph, from, where, having, groupby, orderby, projection egraph.Id) (egraph.Id, error) {
	return aggplan.PlanSelect(ctx, g, from, where, having, groupby, orderby, projection)
}

// Extract returns a placeholder rendering of the best term in id's e-class:
// the first e-node's String(), with no cost model applied. A real deployment
// plugs a cost-based extractor in here; that extractor is explicitly out of
// this module's scope.
func (o *Optimizer) Extract(g *analysis.Graph, id egraph.Id) string {
	nodes := g.Nodes(id)
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].String()
}
