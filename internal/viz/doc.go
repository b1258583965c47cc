// Package viz shows the animation in a terminal.
//
// [Canvas] is a braille dot grid implementing render.Surface, so the same
// driver that paints a window paints the terminal. [Model] wraps the driver
// in a Bubble Tea program that runs one frame per tick.
//
// # Key Bindings
//
//	q, Esc, Ctrl+C - Quit
package viz
