// Package config provides configuration loading, merging, and validation
// facilities for the catalog server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A .env file in the working directory (loaded into the process env)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied to whatever is still empty after merging. The main
// entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
