package resources

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/sensorstack/sensorstack/pkg/core"
	"github.com/sensorstack/sensorstack/pkg/sanitization/aws"
)

const (
	S3_BUCKET_TYPE = "s3_bucket"

	SSE_S3_ALGORITHM = "AES256"
)

var bucketSanitizer = aws.S3BucketSanitizer

// S3Bucket is an isolated object store: server-side encrypted at rest and
// with every public-access block set.
type S3Bucket struct {
	Name         string
	LogicalName  string
	SseAlgorithm string
	BlockPublicAccess bool
	ForceDestroy bool
	Versioned    bool
}

// NewS3Bucket names the bucket `{app}-{purpose}-{account}-{region}` so it is
// globally unique.
func NewS3Bucket(appName string, purpose string, account string, region string) *S3Bucket {
	prefix := bucketSanitizer.Apply(fmt.Sprintf("%s-%s", appName, purpose))
	return &S3Bucket{
		Name:              fmt.Sprintf("%s-%s-%s", prefix, account, region),
		LogicalName:       fmt.Sprintf("%s-bucket", purpose),
		SseAlgorithm:      SSE_S3_ALGORITHM,
		BlockPublicAccess: true,
		ForceDestroy:      true,
	}
}

func (bucket *S3Bucket) Id() core.ResourceId {
	return core.ResourceId{
		Provider: AWS_PROVIDER,
		Type:     S3_BUCKET_TYPE,
		Name:     bucket.Name,
	}
}

func (bucket *S3Bucket) LogicalId() string {
	return strcase.ToCamel(bucket.LogicalName)
}

func (bucket *S3Bucket) CloudformationType() string {
	return "AWS::S3::Bucket"
}

func (bucket *S3Bucket) DestroyOnTeardown() bool {
	return bucket.ForceDestroy
}

func (bucket *S3Bucket) Properties() map[string]any {
	props := map[string]any{
		"BucketName": bucket.Name,
		"BucketEncryption": map[string]any{
			"ServerSideEncryptionConfiguration": []any{
				map[string]any{
					"ServerSideEncryptionByDefault": map[string]any{
						"SSEAlgorithm": bucket.SseAlgorithm,
					},
				},
			},
		},
	}
	if bucket.BlockPublicAccess {
		props["PublicAccessBlockConfiguration"] = map[string]any{
			"BlockPublicAcls":       true,
			"BlockPublicPolicy":     true,
			"IgnorePublicAcls":      true,
			"RestrictPublicBuckets": true,
		}
	}
	if bucket.Versioned {
		props["VersioningConfiguration"] = map[string]any{"Status": "Enabled"}
	}
	return props
}
