// Package depgraph builds the directed dependency graph of a task batch and
// detects circular dependency chains.
package depgraph

import (
	"github.com/phrazzld/taskrank-api/internal/domain"
)

// Node visit states for the depth-first traversal. A node is "active" while
// it sits on the current traversal path; revisiting an active node is the
// cycle condition.
const (
	unvisited = iota
	active
	visited
)

// frame is one entry of the explicit traversal stack: a node plus the index
// of the next neighbor to examine. The explicit stack avoids recursion-depth
// limits on large batches while preserving the exact two-set discipline of a
// recursive DFS.
type frame struct {
	title string
	next  int
}

// Detect reports whether the dependency relation among the batch contains a
// cycle, together with one witness path.
//
// Each task title is a node; each entry of its Dependencies list is an
// outgoing edge. Dependencies that reference titles absent from the batch are
// dangling edges and behave as leaves, never as errors. Traversal follows
// batch insertion order for roots and declaration order for neighbors, so
// identical input always yields the same witness path.
//
// The witness path runs root-to-repeat with the closing node repeated at both
// ends, e.g. [A B C A] for A→B, B→C, C→A. Detection cannot fail on a
// validated batch.
func Detect(tasks []*domain.Task) domain.CycleReport {
	order := make([]string, 0, len(tasks))
	edges := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		if _, seen := edges[t.Title]; !seen {
			order = append(order, t.Title)
		}
		edges[t.Title] = t.Dependencies
	}

	state := make(map[string]int, len(edges))

	for _, root := range order {
		if state[root] != unvisited {
			continue
		}

		stack := []frame{{title: root}}
		state[root] = active

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			neighbors := edges[top.title]

			if top.next >= len(neighbors) {
				state[top.title] = visited
				stack = stack[:len(stack)-1]
				continue
			}

			neighbor := neighbors[top.next]
			top.next++

			switch state[neighbor] {
			case active:
				return domain.CycleReport{
					HasCycle:   true,
					CycleNodes: witnessPath(stack, neighbor),
				}
			case unvisited:
				state[neighbor] = active
				stack = append(stack, frame{title: neighbor})
			}
		}
	}

	return domain.CycleReport{HasCycle: false, CycleNodes: []string{}}
}

// witnessPath extracts the cycle from the active traversal stack: the nodes
// from the repeated title through the top of the stack, closed by repeating
// the title at the end.
func witnessPath(stack []frame, repeated string) []string {
	start := 0
	for i, f := range stack {
		if f.title == repeated {
			start = i
			break
		}
	}

	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.title)
	}
	return append(path, repeated)
}
