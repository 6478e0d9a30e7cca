// Package configs manages configuration and resolved settings for noted.
//
// Everything lives under one data directory, which defaults to the working
// directory:
//
//	notes/              one file per note
//	auth/password.txt   the obfuscated password
//	key/                reserved, created but unused
//	audit.jsonl         audit log of operations
//
// # Config File
//
// An optional noted.toml (or noted.yaml / noted.yml) in the data directory,
// or any file passed with --config, overrides the defaults:
//
//	[storage]
//	notes_dir = "notes"
//	note_suffix = ".txt"
//
//	[cipher]
//	shift = 3
//
//	[display]
//	banner = true
//
// Environment variables in the file are expanded before decoding. The
// decoded config is validated and rejected with ErrInvalidConfig when a
// field is missing or out of range.
//
// # Settings
//
// Resolve turns a Config into Settings with absolute paths. Commands build
// Settings once in their PersistentPreRunE and pass them down.
package configs
