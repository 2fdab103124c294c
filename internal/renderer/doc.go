// Package renderer draws the grid overlay.
//
// A Surface shows, hides and draws one grid at a time. Calls never block
// on the drawing itself: the Terminal surface hands every command to its
// own event loop and returns, so the key dispatcher cannot deadlock
// against the screen.
//
// Grids are described in screen pixels by a GridSpec. The Terminal
// surface scales them onto the character cells of a tcell screen, which
// makes it usable both as the overlay of the real desktop and as a
// stand-alone simulation.
//
//	┌───────────────┐  DrawGrid   ┌──────────────┐  PostEvent  ┌───────────┐
//	│ app.Executor  │ ──────────▶ │   Terminal   │ ──────────▶ │ draw loop │
//	└───────────────┘             └──────────────┘             └───────────┘
package renderer
