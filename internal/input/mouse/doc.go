// Package mouse provides the pointer geometry and click timing used by the
// grid overlay.
//
// # Geometry
//
// Rect and Point use float64 coordinates so that nested subdivision (a fine
// cell inside a coarse cell inside the screen) does not accumulate rounding
// error. Values are rounded to integer pixels only when a Point is handed to
// the injector:
//
//	bounds := mouse.Rect{X2: 1920, Y2: 1080}
//	cell := mouse.CellRect(0, 0, 25, 36, bounds)
//	target := cell.Center().Round()
//
// # Double Click
//
// DoubleClick is a single-slot latch armed after each grid-resolved click.
// Pressing the same key again within the interval repeats the click at the
// same point; any other key, or the interval running out, disarms it.
package mouse
