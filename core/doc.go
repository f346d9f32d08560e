// Package core provides a thread-safe, in-memory labelled weighted graph that
// doubles as a space.Space over vertex IDs.
//
// It backs the tree and graph flavours of informed search: trees entered as
// parent → child:cost lists and general weighted graphs with string labels.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only “from→to” edges (the default, as trees are
//	    parent→child). Undirected graphs mirror every edge.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	HasVertex(id string) bool                               // O(1)
//	AddEdge(from, to string, weight float64) (string, error)// O(1) amortized
//	HasEdge(from, to string) bool                           // O(d)
//	Neighbors(id string) ([]*Edge, error)                   // O(d), insertion order
//	Vertices() []string                                     // O(V·log V), sorted
//	Edges() []*Edge                                         // O(E), insertion order
//	Successors(id string) ([]space.Successor[string], error)// O(d)
//
// Determinism: Neighbors and Successors return edges in the order they were
// added, so searches over the same graph are reproducible.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex (wraps space.ErrInvalidState)
//	ErrBadWeight           – negative or NaN weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrBadChildList        – malformed "child:cost" list in ParseChildren
package core
