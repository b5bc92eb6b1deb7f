// Package polyline provides the compact integer-coordinate path primitive
// the selection and grid packages build segments out of.
//
// What:
//
//   - Polyline is an immutable sequence of at least two integer (x,y)
//     points; equality is component-wise.
//   - Buffer is the mutable builder: Append suppresses consecutive
//     duplicate points, Reverse flips the accumulated points in place, and
//     ToPolyline freezes the result.
//
// Why:
//
//   - grid.GridGraph.PathToPolyline and selection's live-wire/append paths
//     both build a polyline point-by-point from a vertex-id sequence or a
//     pair of endpoints; a single shared builder keeps the "no consecutive
//     duplicate" rule (which drops the shared point where one segment's end
//     meets the next segment's start when segments are concatenated, and
//     collapses a line between two equal points) in one place.
//
// Errors:
//
//   - ErrEmptyBuffer: ToPolyline called on a Buffer with no points appended.
package polyline
