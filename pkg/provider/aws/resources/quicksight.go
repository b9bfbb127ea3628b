package resources

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
)

const QUICKSIGHT_DATA_SOURCE_TYPE = "quicksight_data_source"

// DataSourceAdminActions is the fixed permission list granted to the one
// administrative principal on the dashboard data source.
var DataSourceAdminActions = []string{
	"quicksight:DescribeDataSource",
	"quicksight:DescribeDataSourcePermissions",
	"quicksight:PassDataSource",
	"quicksight:UpdateDataSource",
	"quicksight:DeleteDataSource",
	"quicksight:UpdateDataSourcePermissions",
	"quicksight:CreateDataSource",
	"quicksight:ListDataSources",
	"quicksight:TagResource",
	"quicksight:ListTagsForResource",
}

type (
	// QuicksightDataSource binds the dashboard to the query workgroup. The
	// workgroup must exist before the data source; QuickSight only holds its
	// name, not an attribute reference, so the ordering edge is explicit.
	QuicksightDataSource struct {
		Name         string
		LogicalName  string
		DataSourceId string
		DisplayName  string
		AwsAccountId string
		Workgroup    *AthenaWorkgroup
		Permissions  []QuicksightResourcePermission
	}

	QuicksightResourcePermission struct {
		Principal string
		Actions   []string
	}
)

// NewQuicksightAthenaDataSource grants the fixed admin action list to the
// account's default Admin user.
func NewQuicksightAthenaDataSource(dataSourceId string, displayName string, workgroup *AthenaWorkgroup, account string, region string) *QuicksightDataSource {
	return &QuicksightDataSource{
		Name:         dataSourceId,
		LogicalName:  dataSourceId,
		DataSourceId: dataSourceId,
		DisplayName:  displayName,
		AwsAccountId: account,
		Workgroup:    workgroup,
		Permissions: []QuicksightResourcePermission{
			{
				Principal: fmt.Sprintf("arn:aws:quicksight:%s:%s:user/default/Admin", region, account),
				Actions:   DataSourceAdminActions,
			},
		},
	}
}

func (ds *QuicksightDataSource) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     QUICKSIGHT_DATA_SOURCE_TYPE,
		Name:     ds.Name,
	}
}

func (ds *QuicksightDataSource) LogicalId() string {
	return strcase.ToCamel(ds.LogicalName)
}

func (ds *QuicksightDataSource) CloudformationType() string {
	return "AWS::QuickSight::DataSource"
}

// DependsOn declares the workgroup-before-data-source ordering edge.
func (ds *QuicksightDataSource) DependsOn() []core.Resource {
	return []core.Resource{ds.Workgroup}
}

func (ds *QuicksightDataSource) Properties() map[string]any {
	permissions := make([]any, 0, len(ds.Permissions))
	for _, permission := range ds.Permissions {
		permissions = append(permissions, map[string]any{
			"Principal": permission.Principal,
			"Actions":   permission.Actions,
		})
	}
	return map[string]any{
		"DataSourceId": ds.DataSourceId,
		"Name":         ds.DisplayName,
		"Type":         "ATHENA",
		"AwsAccountId": ds.AwsAccountId,
		"DataSourceParameters": map[string]any{
			"AthenaParameters": map[string]any{
				"WorkGroup": ds.Workgroup.Name,
			},
		},
		"Permissions": permissions,
	}
}
