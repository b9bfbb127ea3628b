package cfn

import (
	"fmt"

	"github.com/sensorstack/sensorstack/pkg/core"
)

// Ref renders a CloudFormation Ref to another template resource.
func Ref(r Referable) map[string]any {
	return map[string]any{"Ref": r.LogicalId()}
}

// GetAtt renders a CloudFormation Fn::GetAtt for the given attribute.
func GetAtt(r Referable, attribute string) map[string]any {
	return map[string]any{"Fn::GetAtt": []any{r.LogicalId(), attribute}}
}

// Value resolves an IaCValue into its template representation. Values whose
// resource is not Referable, and unknown properties, render as an error
// marker so the mistake is visible in the synthesized output rather than
// silently dropped.
func Value(v core.IaCValue) any {
	ref, ok := v.Resource.(Referable)
	if !ok {
		return fmt.Sprintf("<unresolvable reference %v>", v.Resource)
	}
	switch v.Property {
	case core.ARN_IAC_VALUE:
		return GetAtt(ref, "Arn")
	case core.NAME_IAC_VALUE:
		return Ref(ref)
	}
	return fmt.Sprintf("<unknown property %q of %s>", v.Property, ref.LogicalId())
}

// Dynamic resolves property values that may be literals or references.
func Dynamic(v any) any {
	switch v := v.(type) {
	case core.IaCValue:
		return Value(v)
	case *core.IaCValue:
		return Value(*v)
	default:
		return v
	}
}
