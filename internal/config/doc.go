// Package config loads and merges the settings of the confstore tool.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CONFSTORE_TEMP_EXT, CONFSTORE_BACKUP_EXT,
//     CONFSTORE_WRITER, CONFSTORE_FORMAT, CONFSTORE_REDACT)
//  3. Settings file ($XDG_CONFIG_HOME/confstore/config.json)
//  4. Built-in defaults
//
// The settings file is itself a confstore file with a single [confstore]
// section. The built-in defaults are loaded into its defaults layer, so a key
// missing from the file reads back as the default.
//
// Use [Load] to obtain a merged [Config], [Save] to write one, and
// [SetField] to update a single key.
package config
