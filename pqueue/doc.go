// Package pqueue implements a keyed binary-heap min-priority queue with
// decrease/increase-key support.
//
// What:
//
//   - MinQueue stores distinct integer keys, each paired with an integer
//     priority, and exposes O(log n) insert/update/pop and O(1) peek.
//   - An element→heap-index map makes decrease-key and increase-key direct
//     (sift from the element's current position) rather than requiring a
//     linear scan to find it.
//
// Why:
//
//   - Dijkstra-style searches need to lower a vertex's priority in place
//     whenever a shorter path is discovered, without the "push a stale
//     duplicate and skip it later" trick ballooning heap size on dense
//     graphs.
//
// Complexity:
//
//   - add_or_update: O(log n)
//   - peek_key / peek_priority / size / empty / contains: O(1)
//   - pop: O(log n)
//   - clear: O(1)
//
// Errors:
//
//   - ErrEmpty: peek_key, peek_priority, or pop called on an empty queue.
package pqueue
