package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewGlueDatabase(t *testing.T) {
	assert := assert.New(t)
	db := NewGlueDatabase("app", "sensor-database", "telemetry metadata", "123456789012")

	assert.Equal("app-sensor-database", db.Name)
	assert.Equal("SensorDatabase", db.LogicalId())
	assert.Equal("123456789012", db.CatalogId)

	props := db.Properties()
	input := props["DatabaseInput"].(map[string]any)
	assert.Equal("app-sensor-database", input["Name"])
}

func Test_GlueCrawlerProperties(t *testing.T) {
	assert := assert.New(t)
	crawler := NewGlueCrawler("app", "sensor-data-crawler", "crawls the table", "cron(0 2 * * ? *)")
	crawler.Role = NewIamRole("app", "glue-crawler-role", "crawls", GLUE_ASSUMER_ROLE_POLICY)
	crawler.Database = NewGlueDatabase("app", "sensor-database", "telemetry metadata", "123456789012")
	crawler.TargetTable = NewTimeSeriesTable("app", "sensor-data", "device_id", "timestamp")

	props := crawler.Properties()
	assert.Equal("app-sensor-data-crawler", props["Name"])
	assert.Equal(map[string]any{"Fn::GetAtt": []any{"GlueCrawlerRole", "Arn"}}, props["Role"])
	assert.Equal(map[string]any{"Ref": "SensorDatabase"}, props["DatabaseName"])
	assert.Equal(map[string]any{"ScheduleExpression": "cron(0 2 * * ? *)"}, props["Schedule"])

	targets := props["Targets"].(map[string]any)["DynamoDBTargets"].([]any)
	assert.Len(targets, 1)
	assert.Equal(map[string]any{"Path": map[string]any{"Ref": "SensorDataTable"}}, targets[0])

	// new columns merge in, deletions only get logged
	assert.Equal(map[string]any{
		"UpdateBehavior": "UPDATE_IN_DATABASE",
		"DeleteBehavior": "LOG",
	}, props["SchemaChangePolicy"])
}
