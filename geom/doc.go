// Package geom provides the geometry value types carried by draw commands:
// points, float and integer rectangles, rounded rectangles, 3x3 matrices,
// paths with conic segments, and integer regions.
//
// All types are plain values or explicitly cloned containers. A command
// that stores a Path owns its own copy, so mutating the caller's path after
// recording never changes what was captured.
package geom
