// SPDX-License-Identifier: MIT

// Package fleet allocates capacity-limited buses that carry workers from
// their locations to the hub along each location's unique shortest route.
//
// The allocator is a deterministic greedy heuristic, not an exact solver:
//
//  1. Pick the pending location whose route has the most locations (ties go
//     to the lowest id). Serving the farthest location first lets its bus
//     sweep up leftovers at nearer locations on the same route.
//  2. Send full buses while at least capacity workers wait there.
//  3. Send one partial bus with the rest, and offer its free seats to the
//     intermediate stops of the route, nearest-the-hub first. A stop that
//     fits entirely is emptied; the first stop that does not fit fills the
//     bus.
//  4. Retire the location once nobody waits there; repeat until the
//     pending set is empty.
//
// Counting partial buses:
//
//   - CountEveryPartial (default): every partial bus is one trip.
//   - CountLegacy: a partial bus counts only when a pickup overflowed it or
//     its route had no intermediate stops. This reproduces an older tally in
//     which buses topped up without overflowing were left out; it can
//     under-count and exists for comparing against recorded answers.
//
// A location with no workers never causes a trip of its own, but stays a
// valid pickup point for farther routes until it is retired.
//
// Complexity: O(n²) per Allocate call for n locations, plus O(1) per full bus.
package fleet
