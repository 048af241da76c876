// Copyright 2026 The Oneil Authors
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

// Package toposort sorts a directed graph of generic keys (model file
// paths, parameter names) into topological order, or reports the cycle
// that prevents it. The evaluator uses it to order a model's parameters:
// within a model, parameter dependencies form a DAG of names.
package toposort

import "sort"

// Graph is a directed graph over keys of type K, built by GraphBuilder.
type Graph[K comparable] struct {
	nodes map[K]*node[K]
	order []K
}

type node[K comparable] struct {
	key      K
	out      []K
	inDegree int
}

// GraphBuilder accumulates nodes and edges before Build produces an
// immutable Graph.
type GraphBuilder[K comparable] struct {
	nodes map[K]*node[K]
	order []K
	edges map[edge[K]]struct{}
}

type edge[K comparable] struct{ from, to K }

// NewGraphBuilder returns an empty builder.
func NewGraphBuilder[K comparable]() *GraphBuilder[K] {
	return &GraphBuilder[K]{
		nodes: make(map[K]*node[K]),
		edges: make(map[edge[K]]struct{}),
	}
}

// EnsureNode adds k to the graph if it isn't already present. Nodes with
// no edges still need this, so that they appear in Sort's output.
func (b *GraphBuilder[K]) EnsureNode(k K) {
	if _, ok := b.nodes[k]; ok {
		return
	}
	b.nodes[k] = &node[K]{key: k}
	b.order = append(b.order, k)
}

// AddEdge records a dependency: to depends on from, so from must be sorted
// before to. Idempotent: repeated calls with the same pair add only one
// edge.
func (b *GraphBuilder[K]) AddEdge(from, to K) {
	b.EnsureNode(from)
	b.EnsureNode(to)
	e := edge[K]{from, to}
	if _, ok := b.edges[e]; ok {
		return
	}
	b.edges[e] = struct{}{}
	b.nodes[from].out = append(b.nodes[from].out, to)
	b.nodes[to].inDegree++
}

// Build freezes the builder into a Graph.
func (b *GraphBuilder[K]) Build() *Graph[K] {
	return &Graph[K]{nodes: b.nodes, order: b.order}
}

// Cycle is a closed walk through the graph: Nodes[0] == Nodes[len-1], and
// each consecutive pair is an edge, e.g. [A, B, A].
type Cycle[K comparable] struct {
	Nodes []K
}

// Sort returns the graph's nodes in dependency order: every node is
// preceded by every node with an edge pointing to it. Ties (nodes with
// no remaining dependency between them) are broken by the order nodes
// were first added to the builder, so the result is deterministic given
// a deterministic build order.
//
// If the graph has a cycle, sorted is nil and the cycle (oriented
// starting from its lowest-insertion-order node) is returned instead.
func (g *Graph[K]) Sort() (sorted []K, cycle *Cycle[K]) {
	inDegree := make(map[K]int, len(g.nodes))
	for k, n := range g.nodes {
		inDegree[k] = n.inDegree
	}
	indexOf := make(map[K]int, len(g.order))
	for i, k := range g.order {
		indexOf[k] = i
	}
	byInsertion := func(s []K) {
		sort.Slice(s, func(i, j int) bool { return indexOf[s[i]] < indexOf[s[j]] })
	}

	var ready []K
	for _, k := range g.order {
		if inDegree[k] == 0 {
			ready = append(ready, k)
		}
	}
	byInsertion(ready)

	sorted = make([]K, 0, len(g.nodes))
	for len(ready) > 0 {
		k := ready[0]
		ready = ready[1:]
		sorted = append(sorted, k)

		var unlocked []K
		for _, next := range g.nodes[k].out {
			inDegree[next]--
			if inDegree[next] == 0 {
				unlocked = append(unlocked, next)
			}
		}
		byInsertion(unlocked)
		ready = append(ready, unlocked...)
		byInsertion(ready)
	}

	if len(sorted) == len(g.nodes) {
		return sorted, nil
	}

	remaining := make(map[K]bool, len(g.nodes)-len(sorted))
	for _, k := range g.order {
		if inDegree[k] > 0 {
			remaining[k] = true
		}
	}
	return nil, findCycle(g, remaining)
}

// findCycle runs DFS over the nodes still blocked after Sort's Kahn pass:
// by construction, every one of them lies on at least one cycle. It
// returns the first cycle discovered, walking nodes in insertion order so
// the result is deterministic.
func findCycle[K comparable](g *Graph[K], remaining map[K]bool) *Cycle[K] {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[K]int, len(remaining))
	var path []K
	var found *Cycle[K]

	var visit func(k K) bool
	visit = func(k K) bool {
		color[k] = gray
		path = append(path, k)
		for _, next := range g.nodes[k].out {
			if !remaining[next] {
				continue
			}
			switch color[next] {
			case white:
				if visit(next) {
					return true
				}
			case gray:
				start := 0
				for i, k2 := range path {
					if k2 == next {
						start = i
						break
					}
				}
				nodes := append([]K{}, path[start:]...)
				nodes = append(nodes, next)
				found = &Cycle[K]{Nodes: nodes}
				return true
			}
		}
		path = path[:len(path)-1]
		color[k] = black
		return false
	}

	for _, k := range g.order {
		if !remaining[k] || color[k] != white {
			continue
		}
		if visit(k) {
			return found
		}
	}
	return found
}
