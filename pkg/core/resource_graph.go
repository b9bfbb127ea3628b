package core

import (
	"reflect"

	"github.com/sensorstack/sensorstack/pkg/graph"
	"go.uber.org/zap"
)

type (
	// ResourceGraph is the DAG of resource descriptors produced by a topology
	// build. Edges point from a resource to the resources it depends on.
	ResourceGraph struct {
		underlying *graph.Directed[Resource]
	}
)

func NewResourceGraph() *ResourceGraph {
	return &ResourceGraph{
		underlying: graph.NewDirected(func(r Resource) string {
			return r.Id().String()
		}),
	}
}

func (rg *ResourceGraph) AddResource(resource Resource) {
	if _, found := rg.underlying.GetVertex(resource.Id().String()); !found {
		rg.underlying.AddVertex(resource)
		zap.S().Debugf("adding resource: %s", resource.Id())
	}
}

// AddDependency records that source depends on dest. Missing vertices are
// added.
func (rg *ResourceGraph) AddDependency(source Resource, dest Resource) {
	rg.AddResource(source)
	rg.AddResource(dest)
	rg.underlying.AddEdge(source.Id().String(), dest.Id().String())
	zap.S().Debugf("adding %s -> %s", source.Id(), dest.Id())
}

func (rg *ResourceGraph) GetResource(id ResourceId) Resource {
	r, _ := rg.underlying.GetVertex(id.String())
	return r
}

// GetResource returns the resource with the given id from dag if it is of type T.
func GetResource[T Resource](dag *ResourceGraph, id ResourceId) (resource T, ok bool) {
	found := dag.GetResource(id)
	if found == nil {
		return
	}
	resource, ok = found.(T)
	return
}

func (rg *ResourceGraph) HasDependency(source Resource, dest Resource) bool {
	return rg.underlying.HasEdge(source.Id().String(), dest.Id().String())
}

func (rg *ResourceGraph) ListResources() []Resource {
	return rg.underlying.GetAllVertices()
}

func (rg *ResourceGraph) ListDependencies() []graph.Edge[Resource] {
	return rg.underlying.GetAllEdges()
}

func (rg *ResourceGraph) GetDownstreamResources(source Resource) []Resource {
	return rg.underlying.OutgoingVertices(source)
}

func (rg *ResourceGraph) GetUpstreamResources(source Resource) []Resource {
	return rg.underlying.IncomingVertices(source)
}

func (rg *ResourceGraph) TopologicalSort() ([]string, error) {
	return rg.underlying.VertexIdsInTopologicalOrder()
}

// AddDependenciesReflect adds source and one edge per resource referenced by
// its fields. Fields of the following shapes are inspected (`*T` implements
// Resource):
//   - SingleDependency   Resource
//   - SpecificDependency *T
//   - DependencyArray  []Resource / []*T
//   - DependencyMap  map[string]Resource / map[string]*T
//
// IaCValue fields contribute the resource they wrap.
func (rg *ResourceGraph) AddDependenciesReflect(source Resource) {
	rg.AddResource(source)

	sourceValue := reflect.ValueOf(source)
	sourceType := sourceValue.Type()
	if sourceType.Kind() == reflect.Pointer {
		sourceValue = sourceValue.Elem()
		sourceType = sourceType.Elem()
	}
	add := func(targetValue reflect.Value) {
		if targetValue.Kind() == reflect.Pointer && targetValue.IsNil() {
			return
		}
		if !targetValue.CanInterface() {
			return
		}
		switch target := targetValue.Interface().(type) {
		case Resource:
			rg.AddDependency(source, target)
		case *IaCValue:
			if target.Resource != nil {
				rg.AddDependency(source, target.Resource)
			}
		case IaCValue:
			if target.Resource != nil {
				rg.AddDependency(source, target.Resource)
			}
		}
	}
	for i := 0; i < sourceType.NumField(); i++ {
		fieldValue := sourceValue.Field(i)
		switch fieldValue.Kind() {
		case reflect.Slice, reflect.Array:
			for elemIdx := 0; elemIdx < fieldValue.Len(); elemIdx++ {
				add(fieldValue.Index(elemIdx))
			}

		case reflect.Map:
			for iter := fieldValue.MapRange(); iter.Next(); {
				add(iter.Value())
			}

		case reflect.Struct:
			// one level deep, for embedded value structs holding references
			if _, isIaC := fieldValue.Interface().(IaCValue); isIaC {
				add(fieldValue)
				continue
			}
			for j := 0; j < fieldValue.NumField(); j++ {
				add(fieldValue.Field(j))
			}

		default:
			add(fieldValue)
		}
	}
}
