// SPDX-License-Identifier: MIT

// Package busroute counts the bus trips needed to bring every worker from a
// set of locations to a central hub.
//
// The model is small and static: M locations joined by an undirected road
// table (location 0 is the hub), a number of workers waiting at each other
// location, and buses that all carry the same number of seats. Buses only
// travel along the shortest route from the hub to their target and may stop
// on the way to fill empty seats.
//
// Packages, leaf first:
//
//	matrix/    - immutable, validated distance table (Distance, validators)
//	dijkstra/  - shortest-path tree from the hub (Tree, Path)
//	fleet/     - greedy bus allocator over a PendingSet keyed by location id
//	instance/  - text and YAML loaders with eager validation
//	planner/   - pipeline: instance -> matrix -> dijkstra -> fleet, Explain
//	logger/    - zerolog console loggers
//	metrics/   - Prometheus collectors and textfile output
//	cmd/buscount - command-line front end
//
// Quick example:
//
//	in, err := instance.Parse(os.Stdin)
//	if err != nil {
//		return err
//	}
//	plan, err := planner.Solve(in)
//	if err != nil {
//		return err
//	}
//	fmt.Println(plan.Trips())
//
// Everything is single-threaded and deterministic: ties in route length go
// to the lowest location id, both when growing the shortest-path tree and
// when the allocator picks its next target.
package busroute
