// Package scissors is an interactive image-segmentation toolkit: trace a
// selection boundary around an object by clicking control points, with the
// path between two points computed live, either as a straight line or as
// the minimum-cost path through a pixel-intensity graph ("intelligent
// scissors" / live-wire).
//
// The module is organized as a small set of focused packages, composed
// bottom-up:
//
//	pqueue/    — generic indexed binary min-heap
//	pathfind/  — incremental single-source shortest paths over any
//	             integer-indexed graph, batch-resumable for cancellable
//	             background solves
//	grid/      — an 8-connected pixel-grid graph plus gradient-derived
//	             edge weighers, wiring a raster.Raster into pathfind.Graph
//	raster/    — the decoded image buffer the grid and export paths read
//	polyline/  — ordered point sequences with a dedup-on-append builder
//	selection/ — the state machine that ties the above into point-to-point
//	             and scissors selection modes, background solve management,
//	             and PNG export of the traced region
//
// See selection's package doc for the state machine itself; the other
// packages are its supporting data structures and are usable standalone.
package scissors
