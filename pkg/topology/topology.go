// Package topology declares the sensorstack ingestion pipeline: a broker rule
// feeding a time-series table, a scheduled catalog crawler, a federated query
// layer over the table, and the dashboard data source on top.
//
// Build is the whole surface. It is pure and deterministic in the account and
// region it is given; every other name is a fixed string. Any inconsistency in
// the declared properties is the provisioning engine's to find, not ours.
package topology

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/config"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/provider/aws/resources"
)

const (
	// SensorRuleSql must match this string literally; the downstream
	// assertions pin it.
	SensorRuleSql = "SELECT *, timestamp() as received_at FROM 'device/+/data'"

	// Key mapping for matched messages: topic segment 2 of device/{id}/data
	// is the device id, receipt time is the sort key, the payload lands in
	// the data column.
	DeviceIdField      = "device_id"
	DeviceIdTopicValue = "${topic(2)}"
	TimestampField     = "timestamp"
	TimestampValue     = "${timestamp}"
	PayloadField       = "data"

	SensorRuleName = "SensorDataRule"

	// CrawlerSchedule runs the crawler daily at 02:00 UTC.
	CrawlerSchedule = "cron(0 2 * * ? *)"

	// The federated connector comes packaged from the Serverless Application
	// Repository.
	ConnectorApplicationId   = "arn:aws:serverlessrepo:us-east-1:292517598671:applications/AthenaDynamoDBConnector"
	ConnectorSemanticVersion = "2022.47.1"
	ConnectorLambdaMemory    = "3008"
	ConnectorLambdaTimeout   = "900"
)

// Build declares the full resource graph for the given account and region.
func Build(cfg config.Application) *core.ResourceGraph {
	cfg.EnsureDefaults()
	rg := core.NewResourceGraph()

	// Time-series table, keyed by device id and receipt timestamp.
	table := resources.NewTimeSeriesTable(cfg.AppName, "sensor-data", DeviceIdField, TimestampField)
	rg.AddResource(table)

	// The ingestion engine's role: write-only on the table, log delivery
	// scoped to the rule's own log path.
	iotRole := resources.NewIamRole(cfg.AppName, "iot-rule-role",
		"IAM role for the IoT rule to write sensor data to DynamoDB",
		resources.IOT_ASSUMER_ROLE_POLICY)
	iotRole.AddInlinePolicy("sensor-data-write", resources.TableWritePolicy(table))
	iotRole.AddInlinePolicy("rule-error-logs", resources.LogWritePolicy(
		fmt.Sprintf("arn:aws:logs:*:*:log-group:/aws/iot/rule/%s/*", SensorRuleName)))
	rg.AddDependency(iotRole, table)

	errorLogGroup := resources.NewLogGroup("iot-rule-log-group",
		fmt.Sprintf("/aws/iot/rule/%s/errors", SensorRuleName))
	rg.AddResource(errorLogGroup)

	// One rule, one table-insert action, one log-redirect error action.
	rule := resources.NewIotTopicRule(SensorRuleName, SensorRuleSql,
		"Process sensor data from devices and store in DynamoDB")
	rule.Table = table
	rule.Role = iotRole
	rule.HashKeyField = DeviceIdField
	rule.HashKeyValue = DeviceIdTopicValue
	rule.RangeKeyField = TimestampField
	rule.RangeKeyValue = TimestampValue
	rule.PayloadField = PayloadField
	rule.ErrorLogGroup = errorLogGroup
	rg.AddDependenciesReflect(rule)

	// Catalog metadata: database plus the daily crawler. Column deletions
	// are logged, never applied.
	glueDatabase := resources.NewGlueDatabase(cfg.AppName, "sensor-database",
		"Database for sensor data metadata", cfg.Account)
	rg.AddResource(glueDatabase)

	glueRole := resources.NewIamRole(cfg.AppName, "glue-crawler-role",
		"IAM role for the Glue crawler to read the sensor table",
		resources.GLUE_ASSUMER_ROLE_POLICY)
	glueRole.AddAwsManagedPolicy("service-role/AWSGlueServiceRole")
	glueRole.AddInlinePolicy("sensor-data-read", resources.TableReadPolicy(table))
	rg.AddDependency(glueRole, table)

	crawler := resources.NewGlueCrawler(cfg.AppName, "sensor-data-crawler",
		"Crawler for the sensor data table", CrawlerSchedule)
	crawler.Role = glueRole
	crawler.Database = glueDatabase
	crawler.TargetTable = table
	rg.AddDependenciesReflect(crawler)

	// Query layer: two isolated stores, the federated connector, and the
	// workgroup pinned to the results store.
	resultsBucket := resources.NewS3Bucket(cfg.AppName, "athena-results", cfg.Account, cfg.Region)
	rg.AddResource(resultsBucket)
	spillBucket := resources.NewS3Bucket(cfg.AppName, "athena-spill", cfg.Account, cfg.Region)
	rg.AddResource(spillBucket)

	catalogName := fmt.Sprintf("%s-dynamodb-catalog", cfg.AppName)
	connector := resources.NewServerlessApplication("athena-dynamodb-connector",
		ConnectorApplicationId, ConnectorSemanticVersion)
	connector.Parameters["AthenaCatalogName"] = catalogName
	connector.Parameters["SpillBucket"] = core.IaCValue{Resource: spillBucket, Property: core.NAME_IAC_VALUE}
	connector.Parameters["LambdaMemory"] = ConnectorLambdaMemory
	connector.Parameters["LambdaTimeout"] = ConnectorLambdaTimeout
	connector.Parameters["DisableSpillEncryption"] = "false"
	rg.AddDependenciesReflect(connector)

	workgroup := resources.NewAthenaWorkgroup(cfg.AppName, "sensor-workgroup",
		"WorkGroup for querying sensor data", resultsBucket)
	rg.AddDependenciesReflect(workgroup)

	// The catalog entry must exist only after the connector; the engine
	// cannot infer that from any attribute reference.
	dataCatalog := resources.NewAthenaDataCatalog(catalogName, "dynamodb-data-catalog",
		"Athena data catalog for DynamoDB sensor data", connector, cfg.Account, cfg.Region)
	rg.AddDependenciesReflect(dataCatalog)

	// Same for the dashboard data source and the workgroup.
	dataSource := resources.NewQuicksightAthenaDataSource(
		fmt.Sprintf("%s-athena-datasource", cfg.AppName),
		strcase.ToCamel(fmt.Sprintf("%s-telemetry", cfg.AppName)),
		workgroup, cfg.Account, cfg.Region)
	rg.AddDependenciesReflect(dataSource)

	return rg
}
