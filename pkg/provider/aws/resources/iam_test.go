package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewIamRole(t *testing.T) {
	assert := assert.New(t)
	role := NewIamRole("app", "iot-rule-role", "writes telemetry", IOT_ASSUMER_ROLE_POLICY)

	assert.Equal("app-iot-rule-role", role.Name)
	assert.Equal("IotRuleRole", role.LogicalId())
	assert.Equal("iot.amazonaws.com", role.AssumeRolePolicyDoc.Statement[0].Principal.Service)
	assert.Empty(role.InlinePolicies)
}

func Test_TableWritePolicy(t *testing.T) {
	assert := assert.New(t)
	table := NewTimeSeriesTable("app", "sensor-data", "device_id", "timestamp")

	doc := TableWritePolicy(table)
	assert.Len(doc.Statement, 1)
	assert.Equal("Allow", doc.Statement[0].Effect)
	assert.Equal([]string{
		"dynamodb:BatchWriteItem",
		"dynamodb:PutItem",
		"dynamodb:UpdateItem",
		"dynamodb:DeleteItem",
		"dynamodb:DescribeTable",
	}, doc.Statement[0].Action)
	assert.NotContains(doc.Statement[0].Action, "dynamodb:GetItem")
	assert.NotContains(doc.Statement[0].Action, "dynamodb:Scan")
}

func Test_TableReadPolicy(t *testing.T) {
	assert := assert.New(t)
	table := NewTimeSeriesTable("app", "sensor-data", "device_id", "timestamp")

	doc := TableReadPolicy(table)
	assert.Len(doc.Statement, 1)
	assert.Contains(doc.Statement[0].Action, "dynamodb:Scan")
	assert.Contains(doc.Statement[0].Action, "dynamodb:Query")
	assert.NotContains(doc.Statement[0].Action, "dynamodb:PutItem")
	assert.NotContains(doc.Statement[0].Action, "dynamodb:DeleteItem")
}

func Test_IamRoleProperties(t *testing.T) {
	assert := assert.New(t)
	table := NewTimeSeriesTable("app", "sensor-data", "device_id", "timestamp")
	role := NewIamRole("app", "glue-crawler-role", "crawls telemetry", GLUE_ASSUMER_ROLE_POLICY)
	role.AddAwsManagedPolicy("service-role/AWSGlueServiceRole")
	role.AddInlinePolicy("sensor-data-read", TableReadPolicy(table))

	props := role.Properties()
	assert.Equal("app-glue-crawler-role", props["RoleName"])
	assert.Equal([]any{"arn:aws:iam::aws:policy/service-role/AWSGlueServiceRole"},
		props["ManagedPolicyArns"])

	policies, ok := props["Policies"].([]any)
	assert.True(ok)
	assert.Len(policies, 1)
	inline := policies[0].(map[string]any)
	assert.Equal("sensor-data-read", inline["PolicyName"])

	// the table reference renders as a GetAtt on its arn
	rendered := inline["PolicyDocument"].(map[string]any)
	statement := rendered["Statement"].([]any)[0].(map[string]any)
	assert.Equal([]any{
		map[string]any{"Fn::GetAtt": []any{"SensorDataTable", "Arn"}},
	}, statement["Resource"])
}

func Test_LogWritePolicy(t *testing.T) {
	assert := assert.New(t)
	doc := LogWritePolicy("arn:aws:logs:*:*:log-group:/aws/iot/rule/SensorDataRule/*")

	assert.Equal([]string{
		"logs:CreateLogGroup",
		"logs:CreateLogStream",
		"logs:PutLogEvents",
	}, doc.Statement[0].Action)

	rendered := doc.Render()
	statement := rendered["Statement"].([]any)[0].(map[string]any)
	assert.Equal([]any{"arn:aws:logs:*:*:log-group:/aws/iot/rule/SensorDataRule/*"},
		statement["Resource"])
}
