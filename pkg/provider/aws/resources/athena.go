package resources

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/sanitization/aws"
)

const (
	ATHENA_WORKGROUP_TYPE    = "athena_workgroup"
	ATHENA_DATA_CATALOG_TYPE = "athena_data_catalog"

	SSE_S3_ENCRYPTION_OPTION = "SSE_S3"
)

var workgroupSanitizer = aws.AthenaWorkgroupSanitizer

type (
	// AthenaWorkgroup pins query results to the results bucket.
	AthenaWorkgroup struct {
		Name                            string
		LogicalName                     string
		Description                     string
		ResultsBucket                   *S3Bucket
		EncryptionOption                string
		EnforceWorkGroupConfiguration   bool
		PublishCloudWatchMetricsEnabled bool
	}

	// AthenaDataCatalog registers the federated connector as a queryable
	// catalog. It must be provisioned only after the connector application
	// exists; the engine cannot infer that ordering from any attribute
	// reference, so it is an explicit edge.
	AthenaDataCatalog struct {
		Name        string
		LogicalName string
		Description string
		Connector   *ServerlessApplication
		// MetadataFunctionArn points at the connector's handler; the catalog
		// name doubles as the function name.
		MetadataFunctionArn string
	}
)

func NewAthenaWorkgroup(appName string, name string, description string, resultsBucket *S3Bucket) *AthenaWorkgroup {
	return &AthenaWorkgroup{
		Name:                            workgroupSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		LogicalName:                     name,
		Description:                     description,
		ResultsBucket:                   resultsBucket,
		EncryptionOption:                SSE_S3_ENCRYPTION_OPTION,
		EnforceWorkGroupConfiguration:   true,
		PublishCloudWatchMetricsEnabled: true,
	}
}

func NewAthenaDataCatalog(catalogName string, logicalName string, description string, connector *ServerlessApplication, account string, region string) *AthenaDataCatalog {
	return &AthenaDataCatalog{
		Name:                catalogName,
		LogicalName:         logicalName,
		Description:         description,
		Connector:           connector,
		MetadataFunctionArn: fmt.Sprintf("arn:aws:lambda:%s:%s:function:%s", region, account, catalogName),
	}
}

func (wg *AthenaWorkgroup) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     ATHENA_WORKGROUP_TYPE,
		Name:     wg.Name,
	}
}

func (wg *AthenaWorkgroup) LogicalId() string {
	return strcase.ToCamel(wg.LogicalName)
}

func (wg *AthenaWorkgroup) CloudformationType() string {
	return "AWS::Athena::WorkGroup"
}

func (wg *AthenaWorkgroup) Properties() map[string]any {
	return map[string]any{
		"Name":        wg.Name,
		"Description": wg.Description,
		"WorkGroupConfiguration": map[string]any{
			"ResultConfiguration": map[string]any{
				"OutputLocation": fmt.Sprintf("s3://%s/", wg.ResultsBucket.Name),
				"EncryptionConfiguration": map[string]any{
					"EncryptionOption": wg.EncryptionOption,
				},
			},
			"EnforceWorkGroupConfiguration":   wg.EnforceWorkGroupConfiguration,
			"PublishCloudWatchMetricsEnabled": wg.PublishCloudWatchMetricsEnabled,
		},
	}
}

func (catalog *AthenaDataCatalog) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     ATHENA_DATA_CATALOG_TYPE,
		Name:     catalog.Name,
	}
}

func (catalog *AthenaDataCatalog) LogicalId() string {
	return strcase.ToCamel(catalog.LogicalName)
}

func (catalog *AthenaDataCatalog) CloudformationType() string {
	return "AWS::Athena::DataCatalog"
}

// DependsOn declares the connector-before-catalog ordering edge.
func (catalog *AthenaDataCatalog) DependsOn() []core.Resource {
	return []core.Resource{catalog.Connector}
}

func (catalog *AthenaDataCatalog) Properties() map[string]any {
	return map[string]any{
		"Name":        catalog.Name,
		"Type":        "LAMBDA",
		"Description": catalog.Description,
		"Parameters": map[string]any{
			"metadata-function": catalog.MetadataFunctionArn,
		},
	}
}
