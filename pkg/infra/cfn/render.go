package cfn

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sensorstack/sensorstack/pkg/core"
	"go.uber.org/zap"
)

type TemplateOpts struct {
	Description string
}

// RenderGraph synthesizes the resource graph into a template. Every vertex
// must implement Resource; logical ids must be unique across the graph.
func RenderGraph(dag *core.ResourceGraph, opts TemplateOpts) (*Template, error) {
	template := &Template{
		AWSTemplateFormatVersion: TemplateFormatVersion,
		Description:              opts.Description,
		Resources:                make(map[string]*ResourceEntry),
	}

	order, err := dag.TopologicalSort()
	if err != nil {
		return nil, errors.Wrap(err, "resource graph is not a DAG")
	}

	for _, idStr := range order {
		var id core.ResourceId
		if err := id.UnmarshalText([]byte(idStr)); err != nil {
			return nil, err
		}
		res := dag.GetResource(id)
		cr, ok := res.(Resource)
		if !ok {
			return nil, errors.Errorf("resource %s has no CloudFormation rendering", idStr)
		}

		entry := &ResourceEntry{
			Type:       cr.CloudformationType(),
			Properties: cr.Properties(),
		}
		if d, ok := res.(Destroyable); ok && d.DestroyOnTeardown() {
			entry.DeletionPolicy = "Delete"
		}
		if ed, ok := res.(ExplicitDependencies); ok {
			for _, dep := range ed.DependsOn() {
				ref, ok := dep.(Referable)
				if !ok {
					return nil, errors.Errorf("explicit dependency of %s is not renderable", idStr)
				}
				entry.DependsOn = append(entry.DependsOn, ref.LogicalId())
			}
			sort.Strings(entry.DependsOn)
		}

		if existing, collision := template.Resources[cr.LogicalId()]; collision {
			return nil, errors.Errorf("logical id %s already taken by a %s", cr.LogicalId(), existing.Type)
		}
		template.Resources[cr.LogicalId()] = entry
		zap.S().Debugf("rendered %s as %s", idStr, cr.LogicalId())
	}

	if len(template.Resources) == 0 {
		return nil, errors.New("synthesized template has no resources")
	}
	return template, nil
}
