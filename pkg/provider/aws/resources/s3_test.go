package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewS3Bucket(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("my_app", "athena-spill", "123456789012", "us-west-2")

	// underscores are not valid in bucket names; they get replaced
	assert.Equal("my-app-athena-spill-123456789012-us-west-2", bucket.Name)
	assert.Equal("AthenaSpillBucket", bucket.LogicalId())
	assert.True(bucket.BlockPublicAccess)
	assert.True(bucket.DestroyOnTeardown())
	assert.False(bucket.Versioned)
}

func Test_S3BucketProperties(t *testing.T) {
	assert := assert.New(t)
	bucket := NewS3Bucket("app", "athena-results", "123456789012", "us-west-2")

	props := bucket.Properties()
	assert.Equal("app-athena-results-123456789012-us-west-2", props["BucketName"])
	assert.Equal(map[string]any{
		"BlockPublicAcls":       true,
		"BlockPublicPolicy":     true,
		"IgnorePublicAcls":      true,
		"RestrictPublicBuckets": true,
	}, props["PublicAccessBlockConfiguration"])

	sse := props["BucketEncryption"].(map[string]any)["ServerSideEncryptionConfiguration"].([]any)
	byDefault := sse[0].(map[string]any)["ServerSideEncryptionByDefault"].(map[string]any)
	assert.Equal("AES256", byDefault["SSEAlgorithm"])

	assert.NotContains(props, "VersioningConfiguration")
	bucket.Versioned = true
	assert.Equal(map[string]any{"Status": "Enabled"}, bucket.Properties()["VersioningConfiguration"])
}
