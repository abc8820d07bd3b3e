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

package expr

import "github.com/dolthub/go-sqlopt/egraph"

// noopAnalysis is the trivial Analysis used by this package's own tests,
// which only exercise parsing and insertion, not the full analysis stack
// built on top in package analysis.
type noopAnalysis struct{}

func (noopAnalysis) Make(*egraph.Graph[struct{}], egraph.Language) struct{} { return struct{}{} }
func (noopAnalysis) Merge(to *struct{}, from struct{}) bool                 { return false }
func (noopAnalysis) Modify(*egraph.Graph[struct{}], egraph.Id)              {}

func egraphForTest() *egraph.Graph[struct{}] {
	return egraph.New[struct{}](noopAnalysis{})
}
