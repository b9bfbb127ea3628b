package resources

import (
	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/infra/cfn"
)

const SERVERLESS_APPLICATION_TYPE = "serverless_application"

// ServerlessApplication deploys a packaged application from the Serverless
// Application Repository; here, the federated query connector. Parameter
// values are literal strings or IaCValues resolved at synthesis.
type ServerlessApplication struct {
	Name            string
	LogicalName     string
	ApplicationId   string
	SemanticVersion string
	Parameters      map[string]any
}

func NewServerlessApplication(name string, applicationId string, semanticVersion string) *ServerlessApplication {
	return &ServerlessApplication{
		Name:            name,
		LogicalName:     name,
		ApplicationId:   applicationId,
		SemanticVersion: semanticVersion,
		Parameters:      make(map[string]any),
	}
}

func (app *ServerlessApplication) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     SERVERLESS_APPLICATION_TYPE,
		Name:     app.Name,
	}
}

func (app *ServerlessApplication) LogicalId() string {
	return strcase.ToCamel(app.LogicalName)
}

func (app *ServerlessApplication) CloudformationType() string {
	return "AWS::Serverless::Application"
}

func (app *ServerlessApplication) Properties() map[string]any {
	parameters := make(map[string]any, len(app.Parameters))
	for key, value := range app.Parameters {
		parameters[key] = cfn.Dynamic(value)
	}
	return map[string]any{
		"Location": map[string]any{
			"ApplicationId":   app.ApplicationId,
			"SemanticVersion": app.SemanticVersion,
		},
		"Parameters": parameters,
	}
}
