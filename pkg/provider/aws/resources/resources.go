// Package resources holds the typed descriptors for every managed AWS
// resource the sensorstack topology declares. Descriptors are plain structs;
// references between them (pointer fields, IaCValues) become graph edges and
// synthesize to Ref/Fn::GetAtt in the template.
package resources

const AWS_PROVIDER = "aws"
