package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AthenaWorkgroupProperties(t *testing.T) {
	assert := assert.New(t)
	results := NewS3Bucket("app", "athena-results", "123456789012", "us-west-2")
	wg := NewAthenaWorkgroup("app", "sensor-workgroup", "queries telemetry", results)

	assert.Equal("app-sensor-workgroup", wg.Name)
	assert.Equal("SensorWorkgroup", wg.LogicalId())

	props := wg.Properties()
	conf := props["WorkGroupConfiguration"].(map[string]any)
	assert.Equal(true, conf["EnforceWorkGroupConfiguration"])
	assert.Equal(true, conf["PublishCloudWatchMetricsEnabled"])

	resultConf := conf["ResultConfiguration"].(map[string]any)
	assert.Equal("s3://app-athena-results-123456789012-us-west-2/", resultConf["OutputLocation"])
	assert.Equal(map[string]any{"EncryptionOption": "SSE_S3"}, resultConf["EncryptionConfiguration"])
}

func Test_AthenaDataCatalog(t *testing.T) {
	assert := assert.New(t)
	connector := NewServerlessApplication("athena-dynamodb-connector", "arn:aws:serverlessrepo:us-east-1:292517598671:applications/AthenaDynamoDBConnector", "2022.47.1")
	catalog := NewAthenaDataCatalog("app-dynamodb-catalog", "dynamodb-data-catalog",
		"federated telemetry catalog", connector, "123456789012", "us-west-2")

	assert.Equal("DynamodbDataCatalog", catalog.LogicalId())
	if assert.Len(catalog.DependsOn(), 1) {
		assert.Same(connector, catalog.DependsOn()[0])
	}

	props := catalog.Properties()
	assert.Equal("app-dynamodb-catalog", props["Name"])
	assert.Equal("LAMBDA", props["Type"])
	assert.Equal(map[string]any{
		"metadata-function": "arn:aws:lambda:us-west-2:123456789012:function:app-dynamodb-catalog",
	}, props["Parameters"])
}
