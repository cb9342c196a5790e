package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
)

// Issue is a single structural problem found in a dialogue.
type Issue struct {
	Kind   string
	NodeID domain.NodeID
	Detail string
}

const (
	IssueMissingEntry = "missing_entry"
	IssueDangling     = "dangling_edge"
	IssueUnreachable  = "unreachable"
)

func (i Issue) String() string {
	return fmt.Sprintf("%s at node %d: %s", i.Kind, i.NodeID, i.Detail)
}

// Report lists every issue found. Dangling edges and unreachable nodes are
// legal; the report only makes them visible.
type Report struct {
	Issues    []Issue
	Reachable []domain.NodeID
}

// OK reports whether no issue was found.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Err folds the report into a single error, or nil when clean.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		lines[i] = issue.String()
	}
	return fmt.Errorf("found %d issues:\n- %s", len(r.Issues), strings.Join(lines, "\n- "))
}

// ValidateGraph crawls the dialogue from domain.Entry and reports dangling
// edges, nodes that can never be reached and a missing entry node.
func ValidateGraph(infos []domain.NodeInfo) Report {
	byID := make(map[domain.NodeID]domain.NodeInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}

	var report Report
	if _, ok := byID[domain.Entry]; !ok {
		report.Issues = append(report.Issues, Issue{
			Kind:   IssueMissingEntry,
			NodeID: domain.Entry,
			Detail: "traversal ends immediately",
		})
	}

	visited := make(map[domain.NodeID]bool)
	queue := []domain.NodeID{domain.Entry}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		info, ok := byID[current]
		if !ok {
			continue
		}
		visited[current] = true

		for _, target := range successors(info) {
			if target.IsTerminal() {
				continue
			}
			if _, exists := byID[target]; !exists {
				report.Issues = append(report.Issues, Issue{
					Kind:   IssueDangling,
					NodeID: current,
					Detail: fmt.Sprintf("edge to %d has no node", target),
				})
				continue
			}
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	ids := make([]domain.NodeID, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if visited[id] {
			report.Reachable = append(report.Reachable, id)
			continue
		}
		report.Issues = append(report.Issues, Issue{
			Kind:   IssueUnreachable,
			NodeID: id,
			Detail: "no path from the entry node",
		})
	}
	return report
}

// successors lists the ids a node can lead to. A choice with options never
// uses its fallback.
func successors(info domain.NodeInfo) []domain.NodeID {
	if info.Kind == domain.KindChoice && len(info.Options) > 0 {
		out := make([]domain.NodeID, len(info.Options))
		for i, opt := range info.Options {
			out[i] = opt.To
		}
		return out
	}
	return []domain.NodeID{info.Next}
}
