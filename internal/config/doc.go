// Package config loads the gridmouse configuration.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. GRIDMOUSE_* Environment │
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/gridmouse/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The merged map is decoded into Config with mapstructure. Problems that
// leave a usable configuration (unknown keys, out of range style values,
// incomplete grid maps) are returned as Warnings; only unreadable files
// and undecodable values are errors.
//
// # Sub-packages
//
//   - layer: priority merge of nested maps
//   - loader: TOML, YAML and environment sources
//   - watcher: fsnotify based change notification for live reload
package config
