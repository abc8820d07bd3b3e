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

package pattern

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
)

// Limits bounds a saturation run so a buggy or divergent rule set can't
// loop forever; Runner stops and reports the limit it hit instead of the
// run having reached a genuine fixed point.
type Limits struct {
	MaxIterations int
	MaxNodes      int
	MaxTime       time.Duration
}

// DefaultLimits mirrors egg::Runner's defaults closely enough for this
// optimizer's rule sets: generous enough that realistic query plans
// saturate well before any limit is hit.
func DefaultLimits() Limits {
	return Limits{
		MaxIterations: 60,
		MaxNodes:      100_000,
		MaxTime:       5 * time.Second,
	}
}

// StopReason records why Run returned.
type StopReason int

const (
	Saturated StopReason = iota
	IterationLimit
	NodeLimit
	TimeLimit
)

func (r StopReason) String() string {
	switch r {
	case Saturated:
		return "saturated"
	case IterationLimit:
		return "iteration-limit"
	case NodeLimit:
		return "node-limit"
	case TimeLimit:
		return "time-limit"
	default:
		return "unknown"
	}
}

// IterationReport summarizes one round of matching and applying, the data
// a caller would want to log or plot per iteration.
type IterationReport struct {
	Index      int
	Matches    int
	Applied    int
	ClassCount int
	Elapsed    time.Duration
}

// Runner drives a set of Rewrite rules to saturation (or a Limits ceiling)
// against an e-graph: search every rule against every class, defer
// application until the whole round has searched (so later rules in the
// round still see the pre-round graph), apply, then Rebuild.
type Runner struct {
	Limits  Limits
	Reports []IterationReport
}

// NewRunner creates a Runner with the given limits.
func NewRunner(limits Limits) *Runner {
	return &Runner{Limits: limits}
}

// Run applies rules to g until saturation, a Limits ceiling, or ctx is
// canceled, and returns why it stopped.
func (r *Runner) Run(ctx context.Context, g *analysis.Graph, rules []Rewrite) StopReason {
	span, ctx := opentracing.StartSpanFromContext(ctx, "pattern.Runner.Run")
	defer span.Finish()

	start := time.Now()
	for iter := 0; r.Limits.MaxIterations <= 0 || iter < r.Limits.MaxIterations; iter++ {
		select {
		case <-ctx.Done():
			return TimeLimit
		default:
		}
		if time.Since(start) > r.Limits.MaxTime {
			logrus.WithField("iteration", iter).Warn("pattern: runner hit time limit")
			return TimeLimit
		}
		if r.Limits.MaxNodes > 0 && g.Size() > r.Limits.MaxNodes {
			logrus.WithField("iteration", iter).Warn("pattern: runner hit node limit")
			return NodeLimit
		}

		iterStart := time.Now()
		matches, applied := r.runIteration(ctx, g, rules)
		g.Rebuild()

		r.Reports = append(r.Reports, IterationReport{
			Index:      iter,
			Matches:    matches,
			Applied:    applied,
			ClassCount: g.Size(),
			Elapsed:    time.Since(iterStart),
		})
		logrus.WithFields(logrus.Fields{
			"iteration": iter,
			"matches":   matches,
			"applied":   applied,
			"classes":   g.Size(),
		}).Debug("pattern: runner iteration complete")

		if applied == 0 {
			return Saturated
		}
	}
	return IterationLimit
}

type pendingUnion struct {
	matched egraph.Id
	result  egraph.Id
}

// runIteration searches every rule against every live class (against the
// e-graph as it stood at the start of the round) and defers every union
// until the whole round has been searched, matching egg's "search, then
// apply" discipline: applying a rule mid-round must not change what a
// later rule in the same round sees.
func (r *Runner) runIteration(ctx context.Context, g *analysis.Graph, rules []Rewrite) (matches, applied int) {
	type hit struct {
		applier Applier
		id      egraph.Id
		subst   Subst
	}
	classes := g.Classes()
	var hits []hit

	for _, rule := range rules {
		span, _ := opentracing.StartSpanFromContext(ctx, "pattern.Rewrite",
			opentracing.Tag{Key: "rule", Value: rule.Name})
		for _, id := range classes {
			for _, subst := range Match(g, rule.Searcher, id) {
				if !rule.satisfied(g, id, subst) {
					continue
				}
				hits = append(hits, hit{applier: rule.Applier, id: id, subst: subst})
			}
		}
		span.Finish()
	}
	matches = len(hits)

	var pending []pendingUnion
	for _, h := range hits {
		for _, result := range h.applier.Apply(g, h.id, h.subst) {
			pending = append(pending, pendingUnion{matched: h.id, result: result})
		}
	}
	for _, u := range pending {
		if _, merged := g.Union(u.matched, u.result); merged {
			applied++
		}
	}
	return matches, applied
}
