package topology

import (
	"testing"

	"github.com/sensorstack/sensorstack/pkg/config"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/core/coretesting"
	"github.com/stretchr/testify/assert"
)

var testCfg = config.Application{
	AppName: "sensorstack",
	Account: "123456789012",
	Region:  "us-west-2",
}

func Test_Build(t *testing.T) {
	rg := Build(testCfg)

	coretesting.ResourcesExpectation{
		Nodes: []string{
			"aws:dynamodb_table:sensorstack-sensor-data",
			"aws:iam_role:sensorstack-iot-rule-role",
			"aws:log_group:/aws/iot/rule/SensorDataRule/errors",
			"aws:iot_topic_rule:SensorDataRule",
			"aws:glue_database:sensorstack-sensor-database",
			"aws:iam_role:sensorstack-glue-crawler-role",
			"aws:glue_crawler:sensorstack-sensor-data-crawler",
			"aws:s3_bucket:sensorstack-athena-results-123456789012-us-west-2",
			"aws:s3_bucket:sensorstack-athena-spill-123456789012-us-west-2",
			"aws:serverless_application:athena-dynamodb-connector",
			"aws:athena_workgroup:sensorstack-sensor-workgroup",
			"aws:athena_data_catalog:sensorstack-dynamodb-catalog",
			"aws:quicksight_data_source:sensorstack-athena-datasource",
		},
		Deps: []coretesting.StringDep{
			{Source: "aws:iam_role:sensorstack-iot-rule-role", Destination: "aws:dynamodb_table:sensorstack-sensor-data"},
			{Source: "aws:iot_topic_rule:SensorDataRule", Destination: "aws:dynamodb_table:sensorstack-sensor-data"},
			{Source: "aws:iot_topic_rule:SensorDataRule", Destination: "aws:iam_role:sensorstack-iot-rule-role"},
			{Source: "aws:iot_topic_rule:SensorDataRule", Destination: "aws:log_group:/aws/iot/rule/SensorDataRule/errors"},
			{Source: "aws:iam_role:sensorstack-glue-crawler-role", Destination: "aws:dynamodb_table:sensorstack-sensor-data"},
			{Source: "aws:glue_crawler:sensorstack-sensor-data-crawler", Destination: "aws:iam_role:sensorstack-glue-crawler-role"},
			{Source: "aws:glue_crawler:sensorstack-sensor-data-crawler", Destination: "aws:glue_database:sensorstack-sensor-database"},
			{Source: "aws:glue_crawler:sensorstack-sensor-data-crawler", Destination: "aws:dynamodb_table:sensorstack-sensor-data"},
			{Source: "aws:serverless_application:athena-dynamodb-connector", Destination: "aws:s3_bucket:sensorstack-athena-spill-123456789012-us-west-2"},
			{Source: "aws:athena_workgroup:sensorstack-sensor-workgroup", Destination: "aws:s3_bucket:sensorstack-athena-results-123456789012-us-west-2"},
			{Source: "aws:athena_data_catalog:sensorstack-dynamodb-catalog", Destination: "aws:serverless_application:athena-dynamodb-connector"},
			{Source: "aws:quicksight_data_source:sensorstack-athena-datasource", Destination: "aws:athena_workgroup:sensorstack-sensor-workgroup"},
		},
	}.Assert(t, rg)
}

func Test_BuildIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	first := Build(testCfg)
	second := Build(testCfg)

	firstIds := make([]string, 0)
	for _, res := range first.ListResources() {
		firstIds = append(firstIds, res.Id().String())
	}
	secondIds := make([]string, 0)
	for _, res := range second.ListResources() {
		secondIds = append(secondIds, res.Id().String())
	}
	assert.ElementsMatch(firstIds, secondIds)
	assert.Equal(len(first.ListDependencies()), len(second.ListDependencies()))
}

func Test_BuildDefaultsAppName(t *testing.T) {
	assert := assert.New(t)
	rg := Build(config.Application{Account: "123456789012", Region: "us-west-2"})
	assert.NotNil(rg.GetResource(core.ResourceId{
		Provider: "aws",
		Type:     "dynamodb_table",
		Name:     "sensorstack-sensor-data",
	}))
}
