// SPDX-License-Identifier: MIT

// Package planner wires the bus-count pipeline together.
//
// Solve takes a validated instance.Instance through three stages:
//
//  1. matrix.Distance from the instance's road table.
//  2. dijkstra.Dijkstra from the hub, yielding one route per location.
//  3. fleet.Allocate along those routes.
//
// Each run gets a uuid run_id that tags its zerolog lines, and every
// dispatched bus is forwarded to an optional metrics.Recorder. Plan.Explain
// prints the routes and the per-bus breakdown behind the answer.
package planner
