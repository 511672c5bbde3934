// Package config provides the configuration system for az.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← AZ_TAB_SIZE, AZ_EDITOR_WATCH, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/az/config.toml (or .yaml)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Command line flags are applied on top by cmd/az.
//
// # Settings
//
//	[editor]
//	tab_size   = 4     # spaces inserted by Tab
//	undo_depth = 100   # undo snapshots kept
//	status_ttl = 4     # redraws a status message stays visible
//	watch      = true  # report changes made to the file by other programs
//
//	[log]
//	level = "info"     # debug, info, warn, error
//	path  = ""         # debug log file; empty keeps logging off
//
//	[colors]
//	gutter    = "#808080"
//	selection = "#264f78"
//	status    = "#005f87"
//	error     = "#ff5f5f"
//
// Unknown settings and out-of-range values are rejected with a
// *ValidationError naming the setting.
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
package config
