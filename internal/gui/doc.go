// Package gui hosts the animation in a desktop window. Two backends are
// available: raylib (the default) and ebiten.
package gui
