// Package cfn synthesizes a resource graph into a CloudFormation template
// document. Synthesis is a pure transformation of the graph: every resource
// contributes exactly one template entry, inferred references are rendered as
// Ref/Fn::GetAtt values, and explicit ordering edges become DependsOn.
package cfn

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sensorstack/sensorstack/pkg/core"
	"gopkg.in/yaml.v3"
)

const TemplateFormatVersion = "2010-09-09"

type (
	Template struct {
		AWSTemplateFormatVersion string                    `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
		Description              string                    `json:"Description,omitempty" yaml:"Description,omitempty"`
		Resources                map[string]*ResourceEntry `json:"Resources" yaml:"Resources"`
	}

	ResourceEntry struct {
		Type           string         `json:"Type" yaml:"Type"`
		Properties     map[string]any `json:"Properties" yaml:"Properties"`
		DependsOn      []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
		DeletionPolicy string         `json:"DeletionPolicy,omitempty" yaml:"DeletionPolicy,omitempty"`
	}

	// Resource is implemented by descriptors that know their CloudFormation
	// shape.
	Resource interface {
		core.Resource
		Referable
		CloudformationType() string
		Properties() map[string]any
	}

	// Referable is anything with a stable template logical id.
	Referable interface {
		LogicalId() string
	}

	// ExplicitDependencies marks resources whose ordering the provisioning
	// engine cannot infer from attribute references; they synthesize to
	// DependsOn entries.
	ExplicitDependencies interface {
		DependsOn() []core.Resource
	}

	// Destroyable resources synthesize a Delete deletion policy.
	Destroyable interface {
		DestroyOnTeardown() bool
	}
)

// JSON renders the template deterministically: encoding/json emits map keys
// in sorted order, so identical graphs yield identical bytes.
func (t *Template) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling template to json")
	}
	return append(out, '\n'), nil
}

func (t *Template) YAML() ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling template to yaml")
	}
	return out, nil
}
