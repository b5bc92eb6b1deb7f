// Package grid implements the implicit 8-connected pixel-grid graph and the
// edge-weight functions that derive costs from local intensity gradients,
// so Dijkstra searches over it are drawn to strong image edges
// ("intelligent scissors").
//
// What:
//
//   - GridGraph treats an W×H raster.Raster as a pathfind.Graph: each pixel
//     is a vertex id = x + W*y, and each of its up-to-8 neighbors is an
//     outgoing edge, produced on demand (no adjacency list is ever
//     materialized).
//   - Eight direction codes index neighbors counterclockwise starting at
//     "right" (§3): 0=→ 1=↗ 2=↑ 3=↖ 4=← 5=↙ 6=↓ 7=↘. Even codes are
//     axis-aligned, odd codes diagonal.
//   - GrayscaleWeigher and ColorWeigher both implement pathfind.Weigher,
//     turning "high gradient = strong edge" into "low cost = preferred
//     edge" by subtracting a per-direction cross-gradient from a fixed
//     ceiling (§4.5).
//
// Why:
//
//   - Grounded on katalvlaran/lvlath's gridgraph package (implicit/explicit
//     grid-to-graph conversion, direction-indexed neighbor offsets), adapted
//     from that package's 4/8-connected land/water grid model to dense
//     pixel ids and gradient-derived weights instead of unit weights.
//
// Complexity:
//
//   - Edges(v): O(1), at most 8 direction checks.
//   - Weigher.Weight(e): O(1), a handful of raster reads per call.
//
// Errors:
//
//   - ErrOutOfBounds: IDAt called for a point outside the grid.
//   - UnknownWeigherError: MakeWeigher called with an unrecognized name.
package grid
