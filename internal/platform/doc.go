// Package platform defines the operating system collaborators of
// gridmouse: where key events come from, how pointer actions are
// injected and how large the target screen is.
//
// Implementations live in sub-packages:
//
//   - hook: global keyboard hook (gohook)
//   - robot: pointer injection and screen size (robotgo)
//   - termkeys: key events read from the terminal surface (tcell)
//   - platformtest: recording fakes for tests
package platform
