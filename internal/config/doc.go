// Package config loads runtime configuration for the ProfileKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-a string   directory for imported avatar images
//
// # JSON schema
//
//	{
//	  "database_dsn": "profile.db",
//	  "avatar_dir": "avatars"
//	}
//
// This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
