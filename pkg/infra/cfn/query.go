package cfn

import "encoding/json"

// Query helpers over a synthesized template, used by the assertion tests to
// re-verify the declared resource graph against fixed expectations.

// ResourcesOfType returns the entries of the given CloudFormation type keyed
// by logical id.
func (t *Template) ResourcesOfType(cfnType string) map[string]*ResourceEntry {
	found := make(map[string]*ResourceEntry)
	for logicalId, entry := range t.Resources {
		if entry.Type == cfnType {
			found[logicalId] = entry
		}
	}
	return found
}

// HasResourceProperties reports whether some resource of the given type has
// properties matching the expected subset. Maps match when every expected key
// matches; lists match pairwise with equal length; scalars compare after JSON
// normalization, so []string and []any spellings are interchangeable.
func (t *Template) HasResourceProperties(cfnType string, expected map[string]any) bool {
	want := normalize(expected)
	for _, entry := range t.ResourcesOfType(cfnType) {
		if matchesSubset(normalize(entry.Properties), want) {
			return true
		}
	}
	return false
}

func normalize(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func matchesSubset(actual any, expected any) bool {
	switch expected := expected.(type) {
	case map[string]any:
		actualMap, ok := actual.(map[string]any)
		if !ok {
			return false
		}
		for key, want := range expected {
			got, present := actualMap[key]
			if !present || !matchesSubset(got, want) {
				return false
			}
		}
		return true

	case []any:
		actualList, ok := actual.([]any)
		if !ok || len(actualList) != len(expected) {
			return false
		}
		for i, want := range expected {
			if !matchesSubset(actualList[i], want) {
				return false
			}
		}
		return true

	default:
		return actual == expected
	}
}
