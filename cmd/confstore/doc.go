// Confstore is a CLI for reading and editing hierarchical configuration files.
//
// Files hold named sections of name=value items, stored as JSON or in the
// legacy INI-like format. Every write goes through a temporary file, an
// optional backup and an atomic rename.
//
// Usage:
//
//	confstore get app.json Video Width            # print a value
//	confstore get app.json Video FPS --defaults defaults.ini --type int
//	confstore set app.json Video Width 1920       # update and save safely
//	confstore set app.json Video Width 1280 --dry-run
//	confstore unset app.json Video Width          # remove a value
//	confstore sections app.json                   # list sections
//	confstore show app.json --format text         # show values, secrets redacted
//	confstore export app.json --to yaml           # convert formats
//	confstore import legacy.ini app.json          # merge a file into another
//	confstore config init                         # create the settings file
package main
