// Package dagraph is an in-memory directed-graph toolkit for modeling
// dependency relationships — build artifacts, task graphs, anything where
// "X must exist before Y" — and for answering the one question every
// scheduler asks first: is this graph acyclic?
//
// What is dagraph?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: generic vertices & directed edges, predecessor/
//		  successor adjacency kept symmetric on every mutation
//		• Traversal queries: direct neighbors and full transitive closures
//		  in either direction
//		• Cycle detection: Tarjan's strongly-connected-components algorithm,
//		  with an optional randomized traversal order for validating that
//		  results do not depend on iteration order
//
// Why choose dagraph?
//
//   - Minimal API, clear naming — build a graph, query it, ask IsCyclic
//   - Deterministic by default — insertion-order traversal, seeded shuffles
//   - Pure Go, generic keys and payloads — no cgo, no hidden deps
//   - Honest errors — sentinel errors for every misuse, nothing swallowed
//
// Everything is organized under three subpackages:
//
//	core/  — generic Graph and Vertex types, mutation and traversal queries
//	stack/ — the unique ordered stack backing the SCC walk
//	scc/   — Tarjan's algorithm: Components and IsCyclic
//
// Quick ASCII example:
//
//	    binary
//	   /  |   \
//	  s1.o s2.o s3.o        each .o depends on its .c and headers;
//	  |     |     |         IsCyclic reports false, so a build
//	 s1.c  s2.c  s3.c       schedule derived from it is safe.
//
//	go get github.com/katalvlaran/dagraph
package dagraph
