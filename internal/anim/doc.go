// Package anim runs the Lorenz animation.
//
// A [Driver] owns all simulation state: the path, the projector's rotation
// angle and the target surface. Each call to [Driver.Frame] runs one full
// cycle:
//
//  1. clear the surface
//  2. extend the path
//  3. scale the whole path into the size cube
//  4. draw the scaled path (which advances the rotation)
//  5. trim the path from the front to the maximum length
//
// Frames are scheduled by a [Loop], which waits a fixed interval after each
// frame completes, so invocations never overlap. Window and terminal hosts
// that own their own frame callback call Frame directly instead.
package anim
