package resources

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/infra/cfn"
	"github.com/sensorstack/sensorstack/pkg/sanitization/aws"
)

const (
	GLUE_DATABASE_TYPE = "glue_database"
	GLUE_CRAWLER_TYPE  = "glue_crawler"

	// Column merge/delete policy: new columns are merged into the catalog,
	// deletions are only logged. The asymmetry is deliberate.
	UPDATE_IN_DATABASE  = "UPDATE_IN_DATABASE"
	DELETE_BEHAVIOR_LOG = "LOG"

	// crawlerConfiguration merges newly observed columns into existing
	// catalog tables instead of recreating them.
	crawlerConfiguration = `{"Version":1.0,"CrawlerOutput":{"Partitions":{"AddOrUpdateBehavior":"InheritFromTable"},"Tables":{"AddOrUpdateBehavior":"MergeNewColumns"}}}`
)

var glueSanitizer = aws.GlueNameSanitizer

type (
	GlueDatabase struct {
		Name        string
		LogicalName string
		Description string
		CatalogId   string
	}

	// GlueCrawler scans the table on a fixed cadence and keeps the catalog's
	// column metadata in sync.
	GlueCrawler struct {
		Name               string
		LogicalName        string
		Description        string
		Role               *IamRole
		Database           *GlueDatabase
		TargetTable        *DynamodbTable
		ScheduleExpression string
		UpdateBehavior     string
		DeleteBehavior     string
		Configuration      string
	}
)

func NewGlueDatabase(appName string, name string, description string, account string) *GlueDatabase {
	return &GlueDatabase{
		Name:        glueSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		LogicalName: name,
		Description: description,
		CatalogId:   account,
	}
}

func NewGlueCrawler(appName string, name string, description string, schedule string) *GlueCrawler {
	return &GlueCrawler{
		Name:               glueSanitizer.Apply(fmt.Sprintf("%s-%s", appName, name)),
		LogicalName:        name,
		Description:        description,
		ScheduleExpression: schedule,
		UpdateBehavior:     UPDATE_IN_DATABASE,
		DeleteBehavior:     DELETE_BEHAVIOR_LOG,
		Configuration:      crawlerConfiguration,
	}
}

func (db *GlueDatabase) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     GLUE_DATABASE_TYPE,
		Name:     db.Name,
	}
}

func (db *GlueDatabase) LogicalId() string {
	return strcase.ToCamel(db.LogicalName)
}

func (db *GlueDatabase) CloudformationType() string {
	return "AWS::Glue::Database"
}

func (db *GlueDatabase) Properties() map[string]any {
	return map[string]any{
		"CatalogId": db.CatalogId,
		"DatabaseInput": map[string]any{
			"Name":        db.Name,
			"Description": db.Description,
		},
	}
}

func (crawler *GlueCrawler) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     GLUE_CRAWLER_TYPE,
		Name:     crawler.Name,
	}
}

func (crawler *GlueCrawler) LogicalId() string {
	return strcase.ToCamel(crawler.LogicalName)
}

func (crawler *GlueCrawler) CloudformationType() string {
	return "AWS::Glue::Crawler"
}

func (crawler *GlueCrawler) Properties() map[string]any {
	return map[string]any{
		"Name":         crawler.Name,
		"Description":  crawler.Description,
		"Role":         cfn.GetAtt(crawler.Role, "Arn"),
		"DatabaseName": cfn.Ref(crawler.Database),
		"Targets": map[string]any{
			"DynamoDBTargets": []any{
				map[string]any{"Path": cfn.Ref(crawler.TargetTable)},
			},
		},
		"Schedule": map[string]any{
			"ScheduleExpression": crawler.ScheduleExpression,
		},
		"SchemaChangePolicy": map[string]any{
			"UpdateBehavior": crawler.UpdateBehavior,
			"DeleteBehavior": crawler.DeleteBehavior,
		},
		"Configuration": crawler.Configuration,
	}
}
