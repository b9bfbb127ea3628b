package resources

import (
	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/sanitization/aws"
)

const LOG_GROUP_TYPE = "log_group"

var logGroupSanitizer = aws.CloudwatchLogGroupSanitizer

type LogGroup struct {
	Name         string
	LogicalName  string
	LogGroupName string
	ForceDestroy bool
}

func NewLogGroup(logicalName string, logGroupName string) *LogGroup {
	return &LogGroup{
		Name:         logGroupSanitizer.Apply(logGroupName),
		LogicalName:  logicalName,
		LogGroupName: logGroupName,
		ForceDestroy: true,
	}
}

func (group *LogGroup) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     LOG_GROUP_TYPE,
		Name:     group.Name,
	}
}

func (group *LogGroup) LogicalId() string {
	return strcase.ToCamel(group.LogicalName)
}

func (group *LogGroup) CloudformationType() string {
	return "AWS::Logs::LogGroup"
}

func (group *LogGroup) DestroyOnTeardown() bool {
	return group.ForceDestroy
}

func (group *LogGroup) Properties() map[string]any {
	return map[string]any{
		"LogGroupName": group.LogGroupName,
	}
}
