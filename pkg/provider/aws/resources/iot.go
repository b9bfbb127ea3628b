package resources

import (
	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/infra/cfn"
	"github.com/sensorstack/sensorstack/pkg/sanitization/aws"
)

const IOT_TOPIC_RULE_TYPE = "iot_topic_rule"

var ruleSanitizer = aws.IotRuleNameSanitizer

type (
	// IotTopicRule matches inbound device messages and maps them into the
	// table. The descriptor is flat: exactly one primary action (the table
	// insert) and exactly one error action (the log redirect) by
	// construction.
	IotTopicRule struct {
		Name         string
		LogicalName  string
		Sql          string
		Description  string
		RuleDisabled bool

		// primary action: topic segment 2 becomes the partition key, receipt
		// time the sort key, the full payload lands in PayloadField.
		Table         *DynamodbTable
		Role          *IamRole
		HashKeyField  string
		HashKeyValue  string
		RangeKeyField string
		RangeKeyValue string
		PayloadField  string

		// error action: failed matches/inserts are redirected here, no retry.
		ErrorLogGroup *LogGroup
	}
)

func NewIotTopicRule(name string, sql string, description string) *IotTopicRule {
	return &IotTopicRule{
		Name:        ruleSanitizer.Apply(name),
		LogicalName: name,
		Sql:         sql,
		Description: description,
	}
}

func (rule *IotTopicRule) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     IOT_TOPIC_RULE_TYPE,
		Name:     rule.Name,
	}
}

func (rule *IotTopicRule) LogicalId() string {
	return strcase.ToCamel(rule.LogicalName)
}

func (rule *IotTopicRule) CloudformationType() string {
	return "AWS::IoT::TopicRule"
}

func (rule *IotTopicRule) Properties() map[string]any {
	payload := map[string]any{
		"Sql":          rule.Sql,
		"Description":  rule.Description,
		"RuleDisabled": rule.RuleDisabled,
		"Actions": []any{
			map[string]any{
				"DynamoDB": map[string]any{
					"TableName":     cfn.Ref(rule.Table),
					"RoleArn":       cfn.GetAtt(rule.Role, "Arn"),
					"HashKeyField":  rule.HashKeyField,
					"HashKeyValue":  rule.HashKeyValue,
					"RangeKeyField": rule.RangeKeyField,
					"RangeKeyValue": rule.RangeKeyValue,
					"PayloadField":  rule.PayloadField,
				},
			},
		},
	}
	if rule.ErrorLogGroup != nil {
		payload["ErrorAction"] = map[string]any{
			"CloudwatchLogs": map[string]any{
				"LogGroupName": rule.ErrorLogGroup.LogGroupName,
				"RoleArn":      cfn.GetAtt(rule.Role, "Arn"),
			},
		}
	}
	return map[string]any{
		"RuleName":         rule.Name,
		"TopicRulePayload": payload,
	}
}
