// Package config provides configuration loading, merging, and validation
// facilities for the InsightEd client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A dotenv file (".env" or the file named by ENV_FILE), loaded into the
//     process environment without overriding variables that are already set
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetStructuredConfig] for the merged raw
// configuration and [GetClientConfig] for the validated client view.
package config
