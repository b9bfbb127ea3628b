package aws

import (
	"regexp"

	"github.com/sensorstack/sensorstack/pkg/sanitization"
)

// S3BucketSanitizer returns a valid S3 bucket name when applied. Account and
// region suffixes are appended after sanitization, so the cap stays below the
// 63 character bucket limit.
var S3BucketSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-z0-9.-]`),
			Replacement: "-",
		},
	},
	52)

var IamRoleSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w+=,.@-]`),
			Replacement: "_",
		},
	}, 64)

var CloudwatchLogGroupSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^\w-./#]`),
			Replacement: "_",
		},
	}, 512)

// IotRuleNameSanitizer returns a valid IoT topic rule name (alphanumeric and
// underscore only).
var IotRuleNameSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z0-9_]`),
			Replacement: "_",
		},
	}, 128)

// GlueNameSanitizer returns a valid Glue database or crawler name. The Glue
// catalog lowercases names on its own; callers pass lowercase input so that
// references stay exact.
var GlueNameSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-z0-9_-]`),
			Replacement: "-",
		},
	}, 255)

var AthenaWorkgroupSanitizer = sanitization.NewSanitizer(
	[]sanitization.Rule{
		{
			Pattern:     regexp.MustCompile(`[^a-zA-Z0-9._-]`),
			Replacement: "-",
		},
	}, 128)
