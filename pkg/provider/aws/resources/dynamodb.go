package resources

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
)

const (
	DYNAMODB_TABLE_TYPE = "dynamodb_table"

	PAY_PER_REQUEST = "PAY_PER_REQUEST"
)

type (
	// DynamodbTable is the time-series table the ingestion rule writes into.
	// The key schema is fixed at declaration time and never mutated.
	DynamodbTable struct {
		Name                string
		LogicalName         string
		Attributes          []DynamodbTableAttribute
		BillingMode         string
		HashKey             string
		RangeKey            string
		PointInTimeRecovery bool
		ForceDestroy        bool
	}

	DynamodbTableAttribute struct {
		Name string
		Type string
	}
)

// NewTimeSeriesTable declares a table keyed by a string device identifier and
// a numeric event timestamp.
func NewTimeSeriesTable(appName string, name string, hashKey string, rangeKey string) *DynamodbTable {
	return &DynamodbTable{
		Name:        fmt.Sprintf("%s-%s", appName, name),
		LogicalName: fmt.Sprintf("%s-table", name),
		Attributes: []DynamodbTableAttribute{
			{Name: hashKey, Type: "S"},
			{Name: rangeKey, Type: "N"},
		},
		BillingMode:         PAY_PER_REQUEST,
		HashKey:             hashKey,
		RangeKey:            rangeKey,
		PointInTimeRecovery: true,
		ForceDestroy:        true,
	}
}

func (table *DynamodbTable) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     DYNAMODB_TABLE_TYPE,
		Name:     table.Name,
	}
}

func (table *DynamodbTable) LogicalId() string {
	return strcase.ToCamel(table.LogicalName)
}

func (table *DynamodbTable) CloudformationType() string {
	return "AWS::DynamoDB::Table"
}

func (table *DynamodbTable) DestroyOnTeardown() bool {
	return table.ForceDestroy
}

func (table *DynamodbTable) Properties() map[string]any {
	attributeDefinitions := make([]any, 0, len(table.Attributes))
	for _, attr := range table.Attributes {
		attributeDefinitions = append(attributeDefinitions, map[string]any{
			"AttributeName": attr.Name,
			"AttributeType": attr.Type,
		})
	}
	return map[string]any{
		"TableName":            table.Name,
		"AttributeDefinitions": attributeDefinitions,
		"KeySchema": []any{
			map[string]any{"AttributeName": table.HashKey, "KeyType": "HASH"},
			map[string]any{"AttributeName": table.RangeKey, "KeyType": "RANGE"},
		},
		"BillingMode": table.BillingMode,
		"PointInTimeRecoverySpecification": map[string]any{
			"PointInTimeRecoveryEnabled": table.PointInTimeRecovery,
		},
	}
}
