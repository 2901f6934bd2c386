// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetClientConfig], which builds the merged
// [StructuredConfig], maps it to a [ClientConfig] view, applies defaults,
// and validates the result.
package config
