// Package config provides configuration loading, merging, and validation
// facilities for the sync client and the development sync server.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the client and
// [GetServerConfig] for the development server.
package config
