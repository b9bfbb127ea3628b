package resources

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/infra/cfn"
	"github.com/sensorstack/sensorstack/pkg/sanitization/aws"
)

const (
	IAM_ROLE_TYPE = "iam_role"
	VERSION       = "2012-10-17"
)

var roleSanitizer = aws.IamRoleSanitizer

// Trust policies for the service principals that assume the topology's roles.
var IOT_ASSUMER_ROLE_POLICY = &PolicyDocument{
	Version: VERSION,
	Statement: []StatementEntry{
		{
			Action: []string{"sts:AssumeRole"},
			Principal: &Principal{
				Service: "iot.amazonaws.com",
			},
			Effect: "Allow",
		},
	},
}

var GLUE_ASSUMER_ROLE_POLICY = &PolicyDocument{
	Version: VERSION,
	Statement: []StatementEntry{
		{
			Action: []string{"sts:AssumeRole"},
			Principal: &Principal{
				Service: "glue.amazonaws.com",
			},
			Effect: "Allow",
		},
	},
}

type (
	IamRole struct {
		Name                string
		LogicalName         string
		Description         string
		AssumeRolePolicyDoc *PolicyDocument
		AwsManagedPolicies  []string
		InlinePolicies      []*IamInlinePolicy
	}

	IamInlinePolicy struct {
		Name   string
		Policy *PolicyDocument
	}

	PolicyDocument struct {
		Version   string
		Statement []StatementEntry
	}

	// StatementEntry resources are either literal arn strings or IaCValues
	// that resolve to another resource's arn at synthesis time.
	StatementEntry struct {
		Effect    string
		Action    []string
		Resource  []any
		Principal *Principal
	}

	Principal struct {
		Service string
	}
)

func NewIamRole(appName string, roleName string, description string, assumeRolePolicy *PolicyDocument) *IamRole {
	return &IamRole{
		Name:                roleSanitizer.Apply(fmt.Sprintf("%s-%s", appName, roleName)),
		LogicalName:         roleName,
		Description:         description,
		AssumeRolePolicyDoc: assumeRolePolicy,
	}
}

func (role *IamRole) AddInlinePolicy(name string, doc *PolicyDocument) {
	role.InlinePolicies = append(role.InlinePolicies, &IamInlinePolicy{Name: name, Policy: doc})
}

func (role *IamRole) AddAwsManagedPolicy(policyName string) {
	role.AwsManagedPolicies = append(role.AwsManagedPolicies, policyName)
}

// TableWritePolicy grants the write-side actions on the table and nothing
// else; reads stay off the ingestion path.
func TableWritePolicy(table *DynamodbTable) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect: "Allow",
				Action: []string{
					"dynamodb:BatchWriteItem",
					"dynamodb:PutItem",
					"dynamodb:UpdateItem",
					"dynamodb:DeleteItem",
					"dynamodb:DescribeTable",
				},
				Resource: []any{core.IaCValue{Resource: table, Property: core.ARN_IAC_VALUE}},
			},
		},
	}
}

// TableReadPolicy is the crawler-side counterpart: read-only actions on the
// same table.
func TableReadPolicy(table *DynamodbTable) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect: "Allow",
				Action: []string{
					"dynamodb:BatchGetItem",
					"dynamodb:GetRecords",
					"dynamodb:GetShardIterator",
					"dynamodb:Query",
					"dynamodb:GetItem",
					"dynamodb:Scan",
					"dynamodb:ConditionCheckItem",
					"dynamodb:DescribeTable",
				},
				Resource: []any{core.IaCValue{Resource: table, Property: core.ARN_IAC_VALUE}},
			},
		},
	}
}

// LogWritePolicy scopes log delivery to the given log path and nothing wider.
func LogWritePolicy(logPathArn string) *PolicyDocument {
	return &PolicyDocument{
		Version: VERSION,
		Statement: []StatementEntry{
			{
				Effect: "Allow",
				Action: []string{
					"logs:CreateLogGroup",
					"logs:CreateLogStream",
					"logs:PutLogEvents",
				},
				Resource: []any{logPathArn},
			},
		},
	}
}

func (role *IamRole) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     IAM_ROLE_TYPE,
		Name:     role.Name,
	}
}

func (role *IamRole) LogicalId() string {
	return strcase.ToCamel(role.LogicalName)
}

func (role *IamRole) CloudformationType() string {
	return "AWS::IAM::Role"
}

func (role *IamRole) Properties() map[string]any {
	props := map[string]any{
		"RoleName":                 role.Name,
		"Description":              role.Description,
		"AssumeRolePolicyDocument": role.AssumeRolePolicyDoc.Render(),
	}
	if len(role.AwsManagedPolicies) > 0 {
		arns := make([]any, 0, len(role.AwsManagedPolicies))
		for _, policy := range role.AwsManagedPolicies {
			arns = append(arns, fmt.Sprintf("arn:aws:iam::aws:policy/%s", policy))
		}
		props["ManagedPolicyArns"] = arns
	}
	if len(role.InlinePolicies) > 0 {
		policies := make([]any, 0, len(role.InlinePolicies))
		for _, inline := range role.InlinePolicies {
			policies = append(policies, map[string]any{
				"PolicyName":     inline.Name,
				"PolicyDocument": inline.Policy.Render(),
			})
		}
		props["Policies"] = policies
	}
	return props
}

func (doc *PolicyDocument) Render() map[string]any {
	statements := make([]any, 0, len(doc.Statement))
	for _, statement := range doc.Statement {
		entry := map[string]any{
			"Effect": statement.Effect,
			"Action": statement.Action,
		}
		if statement.Principal != nil {
			entry["Principal"] = map[string]any{"Service": statement.Principal.Service}
		}
		if len(statement.Resource) > 0 {
			targets := make([]any, 0, len(statement.Resource))
			for _, value := range statement.Resource {
				targets = append(targets, cfn.Dynamic(value))
			}
			entry["Resource"] = targets
		}
		statements = append(statements, entry)
	}
	return map[string]any{
		"Version":   doc.Version,
		"Statement": statements,
	}
}
