// Package key provides the normalized key event model for the input system.
//
// Raw key names arrive from several sources (the global OS hook, the terminal
// backend, configuration files) with platform-specific spellings such as
// "left shift", "shift_l", "esc" or " ". This package folds all of them into a
// closed set of values at the boundary so that the rest of the input system
// never branches on raw strings:
//
//   - Key: a named key (Escape, Space, Shift, ...) or KeyRune for characters
//   - Modifier: a bitmask of held modifier keys (Shift, Ctrl, Alt, Meta)
//   - Event: a single key-down or key-up with its timestamp
//   - Combo: the one or two normalized characters typed to address a grid cell
//
// # Character Normalization
//
// Letters are upper-cased so that "q", "Q" and "shift+q" address the same grid
// cell. The space key normalizes to the ' ' character.
package key
