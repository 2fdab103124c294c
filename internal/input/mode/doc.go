// Package mode provides the overlay state machine and free-mode controller.
//
// The input system is always in exactly one Mode:
//
//   - Hidden: the overlay is not shown; keys pass to the double-click latch
//   - Coarse: the full-screen grid is shown, optionally with a pending
//     first character
//   - Fine: the sub-grid is shown inside the selected coarse cell
//   - Free: the overlay is hidden and keys nudge or scroll the pointer
//
// Because Mode is a single value, the overlay can never be visible while
// free mode is active.
//
// # Transitions
//
//	Hidden ──show──▶ Coarse ──hit──▶ Fine ──hit──▶ Hidden (click)
//	  ▲                │  ▲            │
//	  └─────escape─────┘  └────miss────┘
//
// Escape hides the overlay from Coarse or Fine. A miss in Coarse clears the
// pending character and stays in Coarse.
//
// # Key Suppression
//
// A key that is physically held is marked in a Suppressor; a further
// key-down for a marked key is operating system auto-repeat and never
// counts as a new press. Every combo resolution clears the set and then
// re-marks the resolving key.
//
// Manager notifies registered callbacks after every change, which the
// dispatcher uses for logging and metrics.
package mode
