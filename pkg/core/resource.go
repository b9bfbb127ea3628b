package core

import (
	"fmt"
	"strings"
)

type (
	// Resource is a single managed-cloud resource descriptor. Descriptors are
	// plain structs; fields that point at other resources (directly or through
	// an IaCValue) become dependency edges in the ResourceGraph.
	Resource interface {
		Id() ResourceId
	}

	ResourceId struct {
		Provider string `yaml:"provider" toml:"provider"`
		Type     string `yaml:"type" toml:"type"`
		Name     string `yaml:"name" toml:"name"`
	}

	// IaCValue is a reference to a property of another resource, resolved at
	// synthesis time (for CloudFormation: Ref or Fn::GetAtt).
	IaCValue struct {
		Resource Resource
		Property string
	}
)

// Common IaCValue properties.
const (
	ARN_IAC_VALUE  = "arn"
	NAME_IAC_VALUE = "name"
)

func (id ResourceId) IsZero() bool {
	return id == ResourceId{}
}

func (id ResourceId) String() string {
	return id.Provider + ":" + id.Type + ":" + id.Name
}

func (id ResourceId) QualifiedTypeName() string {
	return id.Provider + ":" + id.Type
}

func (id ResourceId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ResourceId) UnmarshalText(data []byte) error {
	parts := strings.SplitN(string(data), ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("invalid resource id '%s'", string(data))
	}
	id.Provider = parts[0]
	id.Type = parts[1]
	id.Name = parts[2]
	return nil
}
