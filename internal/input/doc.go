// Package input turns the global key event stream into pointer effects.
//
// Every key event passes through a fixed chain, and the first stage that
// consumes the event ends processing:
//
//  1. Overlay toggle: a short tap of the toggle key shows or hides the grid
//  2. Free-mode toggle: the first press flips free mode on or off
//  3. Free mode: movement and scroll keys nudge the pointer
//  4. Double click: repeating the last grid key quickly clicks again
//  5. Overlay: coarse and fine grid selection
//
// Handle is a pure state transition: it mutates only the Context it owns
// and returns the Effects the caller must apply, in order. It never blocks,
// sleeps or touches the screen, which keeps every timing rule testable with
// synthetic timestamps:
//
//	h := input.NewHandler(input.DefaultConfig(), keymap.Default(), bounds)
//	for ev := range events {
//	    for _, eff := range h.Handle(ev) {
//	        executor.Apply(ctx, eff)
//	    }
//	}
//
// Handler is not safe for concurrent use; it belongs to the dispatch loop.
package input
