package graph

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Directed is a directed graph whose vertices are identified by the hash
	// function supplied at construction time.
	Directed[V any] struct {
		hash       func(V) string
		underlying graph.Graph[string, V]
	}

	Edge[V any] struct {
		Source      V
		Destination V
	}
)

func NewDirected[V any](hash func(V) string) *Directed[V] {
	return &Directed[V]{
		hash:       hash,
		underlying: graph.New(hash, graph.Directed(), graph.Rooted()),
	}
}

func (d *Directed[V]) AddVertex(v V) {
	err := d.underlying.AddVertex(v)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		zap.S().With(zap.Error(err)).Errorf(`unexpected error while adding vertex "%s"`, d.hash(v))
	}
}

func (d *Directed[V]) AddEdge(source string, dest string) {
	err := d.underlying.AddEdge(source, dest)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		zap.S().With(zap.Error(err)).Errorf(`unexpected error while adding edge "%s" -> "%s"`, source, dest)
	}
}

func (d *Directed[V]) AddVerticesAndEdge(source V, dest V) {
	d.AddVertex(source)
	d.AddVertex(dest)
	d.AddEdge(d.hash(source), d.hash(dest))
}

func (d *Directed[V]) GetVertex(id string) (V, bool) {
	v, err := d.underlying.Vertex(id)
	if err != nil {
		if !errors.Is(err, graph.ErrVertexNotFound) {
			zap.S().With(zap.Error(err)).Errorf(`unexpected error while getting vertex "%s"`, id)
		}
		var zero V
		return zero, false
	}
	return v, true
}

func (d *Directed[V]) GetAllVertices() []V {
	predecessors, err := d.underlying.PredecessorMap()
	if err != nil {
		// The in-memory store never returns an error here.
		panic(err)
	}
	var vertices []V
	for id := range predecessors {
		if v, err := d.underlying.Vertex(id); err == nil {
			vertices = append(vertices, v)
		}
	}
	return vertices
}

func (d *Directed[V]) HasEdge(source string, dest string) bool {
	_, err := d.underlying.Edge(source, dest)
	if err != nil && !errors.Is(err, graph.ErrEdgeNotFound) {
		zap.S().With(zap.Error(err)).Errorf(`unexpected error while getting edge "%s" -> "%s"`, source, dest)
	}
	return err == nil
}

func (d *Directed[V]) GetAllEdges() []Edge[V] {
	adjacency, err := d.underlying.AdjacencyMap()
	if err != nil {
		panic(err)
	}
	var results []Edge[V]
	for _, edges := range adjacency {
		for _, edge := range edges {
			sourceV, serr := d.underlying.Vertex(edge.Source)
			destV, derr := d.underlying.Vertex(edge.Target)
			if serr != nil || derr != nil {
				zap.S().Errorf(`ignoring edge "%s" -> "%s" with unresolvable endpoint`, edge.Source, edge.Target)
				continue
			}
			results = append(results, Edge[V]{Source: sourceV, Destination: destV})
		}
	}
	return results
}

func (d *Directed[V]) OutgoingVertices(from V) []V {
	adjacency, err := d.underlying.AdjacencyMap()
	if err != nil {
		panic(err)
	}
	var results []V
	for _, edge := range adjacency[d.hash(from)] {
		if v, err := d.underlying.Vertex(edge.Target); err == nil {
			results = append(results, v)
		}
	}
	return results
}

func (d *Directed[V]) IncomingVertices(to V) []V {
	predecessors, err := d.underlying.PredecessorMap()
	if err != nil {
		panic(err)
	}
	var results []V
	for _, edge := range predecessors[d.hash(to)] {
		if v, err := d.underlying.Vertex(edge.Source); err == nil {
			results = append(results, v)
		}
	}
	return results
}

// Roots returns the vertices that have no incoming edges.
func (d *Directed[V]) Roots() []V {
	predecessors, err := d.underlying.PredecessorMap()
	if err != nil {
		panic(err)
	}
	var roots []V
	for id, incoming := range predecessors {
		if len(incoming) == 0 {
			if v, err := d.underlying.Vertex(id); err == nil {
				roots = append(roots, v)
			}
		}
	}
	return roots
}

func (d *Directed[V]) VertexIdsInTopologicalOrder() ([]string, error) {
	return StableTopologicalSort(d.underlying, stringIterator)
}
