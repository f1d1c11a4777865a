// SPDX-License-Identifier: MIT
package planner

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/busroute/fleet"
)

// Explain writes a human-readable account of the plan: the route and
// distance of every location, then every bus in dispatch order.
//
//	Shortest routes:
//	  location 1: 0 -> 1 (distance 10, 23 workers)
//	  ...
//	Buses:
//	  #1 partial to 3 via 0 -> 2 -> 3: 25 workers (3: 11, 2: 14)
//	  ...
//	Total: 4 buses for 86 workers
func (p *Plan) Explain(w io.Writer) error {
	bw := bufio.NewWriter(w)

	ids := make([]int, 0, len(p.Paths))
	for id := range p.Paths {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Fprintln(bw, "Shortest routes:")
	var note string
	for _, id := range ids {
		note = ""
		if p.isAmbiguous(id) {
			note = ", tie"
		}
		fmt.Fprintf(bw, "  location %d: %s (distance %d, %d workers%s)\n",
			id, p.Paths[id], p.Tree.Dist[id], p.Instance.Workers[id-1], note)
	}

	fmt.Fprintln(bw, "Buses:")
	for _, d := range p.Result.Dispatches {
		fmt.Fprintf(bw, "  #%d %s to %d via %s: %d workers%s\n",
			d.Seq, d.Kind, d.Target, d.Route, d.Load, breakdown(d))
	}

	fmt.Fprintf(bw, "Total: %d buses for %d workers", p.Trips(), p.Result.Boarded())
	if uncounted := len(p.Result.Dispatches) - p.Trips(); uncounted > 0 {
		fmt.Fprintf(bw, " (%d partial buses not counted under the %s policy)", uncounted, p.Policy)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

func (p *Plan) isAmbiguous(id int) bool {
	for _, v := range p.Ambiguous {
		if v == id {
			return true
		}
	}

	return false
}

// breakdown renders " (3: 11, 2: 14)" for buses with pickups, plus a
// marker for buses that were not credited.
func breakdown(d fleet.Dispatch) string {
	var sb strings.Builder
	if len(d.Pickups) > 0 {
		own := d.Load
		parts := make([]string, 0, len(d.Pickups)+1)
		for _, pk := range d.Pickups {
			own -= pk.Workers
		}
		parts = append(parts, fmt.Sprintf("%d: %d", d.Target, own))
		for _, pk := range d.Pickups {
			parts = append(parts, fmt.Sprintf("%d: %d", pk.Location, pk.Workers))
		}
		sb.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	if !d.Counted {
		sb.WriteString(" [not counted]")
	}

	return sb.String()
}
