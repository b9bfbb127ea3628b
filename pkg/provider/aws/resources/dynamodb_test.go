package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewTimeSeriesTable(t *testing.T) {
	assert := assert.New(t)
	table := NewTimeSeriesTable("app", "sensor-data", "device_id", "timestamp")

	assert.Equal("app-sensor-data", table.Name)
	assert.Equal("SensorDataTable", table.LogicalId())
	assert.Equal("aws:dynamodb_table:app-sensor-data", table.Id().String())
	assert.Equal(PAY_PER_REQUEST, table.BillingMode)
	assert.True(table.PointInTimeRecovery)
	assert.True(table.DestroyOnTeardown())
	assert.Equal([]DynamodbTableAttribute{
		{Name: "device_id", Type: "S"},
		{Name: "timestamp", Type: "N"},
	}, table.Attributes)
}

func Test_DynamodbTableProperties(t *testing.T) {
	assert := assert.New(t)
	table := NewTimeSeriesTable("app", "sensor-data", "device_id", "timestamp")

	props := table.Properties()
	assert.Equal("AWS::DynamoDB::Table", table.CloudformationType())
	assert.Equal("app-sensor-data", props["TableName"])
	assert.Equal([]any{
		map[string]any{"AttributeName": "device_id", "KeyType": "HASH"},
		map[string]any{"AttributeName": "timestamp", "KeyType": "RANGE"},
	}, props["KeySchema"])
	assert.Equal(map[string]any{"PointInTimeRecoveryEnabled": true},
		props["PointInTimeRecoverySpecification"])
}
