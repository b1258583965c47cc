// Package render projects the scaled trajectory onto a 2D drawing surface.
//
// A [Surface] is a canvas-like context: ClearRect, BeginPath, LineTo,
// SetStrokeColor and Stroke. Backends (terminal braille, raster image, SVG,
// raylib and ebiten windows) embed [PathRecorder] for the path bookkeeping
// and only implement clearing and stroking.
//
// The [Projector] rotates each point's (x, y) pair about a vertical axis
// through the pivot and keeps z as the screen row:
//
//	screenX = (x - pivot) * cos(angle) - (y - pivot) * sin(angle) + pivot
//	screenY = z
package render
