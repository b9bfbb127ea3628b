package coretesting

import (
	"testing"

	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/stretchr/testify/assert"
)

type (
	StringDep struct {
		Source      string
		Destination string
	}

	ResourcesExpectation struct {
		Nodes []string
		Deps  []StringDep

		// AssertSubset asserts the dag contains all the `.Nodes` and `.Deps`.
		// If false, checks full equality.
		AssertSubset bool
	}
)

func (expect ResourcesExpectation) Assert(t *testing.T, dag *core.ResourceGraph) {
	var res []string
	for _, r := range dag.ListResources() {
		res = append(res, r.Id().String())
	}
	if expect.AssertSubset {
		assert.Subset(t, res, expect.Nodes)
	} else {
		assert.ElementsMatch(t, expect.Nodes, res)
	}

	var deps []StringDep
	for _, e := range dag.ListDependencies() {
		deps = append(deps, StringDep{Source: e.Source.Id().String(), Destination: e.Destination.Id().String()})
	}
	if expect.AssertSubset {
		assert.Subset(t, deps, expect.Deps)
	} else {
		assert.ElementsMatch(t, expect.Deps, deps)
	}
}
