package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type DummyVertex string

func (v DummyVertex) Id() string { return string(v) }

func TestEmptyGraph(t *testing.T) {
	assert := assert.New(t)
	d := NewDirected(DummyVertex.Id)
	assert.Empty(d.Roots())
}

func TestSimpleGraph(t *testing.T) {
	// A ┬─➤ B
	//   └─➤ C
	a, b, c := DummyVertex("a"), DummyVertex("b"), DummyVertex("c")
	d := NewDirected(DummyVertex.Id)
	d.AddVertex(a)
	d.AddVertex(b)
	d.AddVertex(c)
	d.AddEdge(a.Id(), b.Id())
	d.AddEdge(a.Id(), c.Id())

	test(t, "roots", func(assert *assert.Assertions) {
		assert.Equal([]DummyVertex{a}, d.Roots())
	})
	test(t, "outgoing vertices", func(assert *assert.Assertions) {
		assert.ElementsMatch([]DummyVertex{b, c}, d.OutgoingVertices(a))
	})
	test(t, "incoming vertices", func(assert *assert.Assertions) {
		assert.Equal([]DummyVertex{a}, d.IncomingVertices(b))
	})
	test(t, "all edges", func(assert *assert.Assertions) {
		assert.ElementsMatch(
			[]Edge[DummyVertex]{
				{Source: a, Destination: b},
				{Source: a, Destination: c},
			},
			d.GetAllEdges())
	})
	test(t, "has edge", func(assert *assert.Assertions) {
		assert.True(d.HasEdge(a.Id(), b.Id()))
		assert.False(d.HasEdge(b.Id(), a.Id()))
	})
}

func TestDuplicateAddsAreIgnored(t *testing.T) {
	assert := assert.New(t)
	d := NewDirected(DummyVertex.Id)
	v := DummyVertex("dup")
	d.AddVertex(v)
	d.AddVertex(v)
	w := DummyVertex("other")
	d.AddVerticesAndEdge(v, w)
	d.AddVerticesAndEdge(v, w)
	assert.Len(d.GetAllVertices(), 2)
	assert.Len(d.GetAllEdges(), 1)
}

func TestTopologicalOrderIsStable(t *testing.T) {
	assert := assert.New(t)
	d := NewDirected(DummyVertex.Id)
	d.AddVerticesAndEdge(DummyVertex("a"), DummyVertex("c"))
	d.AddVerticesAndEdge(DummyVertex("b"), DummyVertex("c"))
	d.AddVertex(DummyVertex("d"))

	for i := 0; i < 5; i++ {
		order, err := d.VertexIdsInTopologicalOrder()
		if !assert.NoError(err) {
			return
		}
		assert.Equal([]string{"a", "b", "d", "c"}, order)
	}
}

func test(t *testing.T, name string, f func(assert *assert.Assertions)) {
	t.Run(name, func(t *testing.T) {
		f(assert.New(t))
	})
}
