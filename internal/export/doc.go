// Package export provides file-backed drawing surfaces: SVG documents, PNG
// images and animated GIFs of the attractor.
package export
