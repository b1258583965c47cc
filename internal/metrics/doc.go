// Package metrics provides scalar summaries of a trajectory, observed point
// by point while a simulation runs.
package metrics
