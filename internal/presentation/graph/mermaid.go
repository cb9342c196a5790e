package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.NodeID
	CurrentNode  domain.NodeID
}

// Hooks records a traversal into the overlay: every entered node is marked
// visited and the latest one becomes current.
func (o *GraphOverlay) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			o.VisitedNodes = append(o.VisitedNodes, e.NodeID)
			o.CurrentNode = e.NodeID
		},
	}
}

// GenerateMermaid produces a Mermaid flowchart syntax string from node descriptions.
// It applies semantic styling:
// - Entry: ((Circle))
// - Choice: [/Parallelogram/]
// - Default: [Rectangle]
// Edges to ids without a node point to a shared "missing" marker.
func GenerateMermaid(nodes []domain.NodeInfo, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	known := make(map[domain.NodeID]bool, len(nodes))
	for _, node := range nodes {
		known[node.ID] = true
	}
	missing := false

	for _, node := range nodes {
		id := mermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == domain.Entry:
			opener, closer = "((", "))"
		case node.Kind == domain.KindChoice:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label(node.Text), closer))

		edge := func(to domain.NodeID, condition string) {
			if to.IsTerminal() {
				return
			}
			target := mermaidID(to)
			if !known[to] {
				target = "missing"
				missing = true
			}
			if condition == "" {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, target))
				return
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", id, label(condition), target))
		}

		if node.Kind == domain.KindChoice && len(node.Options) > 0 {
			for _, opt := range node.Options {
				edge(opt.To, opt.Label)
			}
			continue
		}
		edge(node.Next, "")
	}

	if missing {
		sb.WriteString("    missing{{\"missing node\"}}\n")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.NodeID]bool)
		for _, v := range overlay.VisitedNodes {
			if !seen[v] && known[v] {
				seen[v] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(v)))
			}
		}
		if known[overlay.CurrentNode] {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", mermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func mermaidID(id domain.NodeID) string {
	return "n" + id.String()
}

// label keeps a node text on one line and short enough to read in a diagram.
func label(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, "\"", "'")
	if r := []rune(s); len(r) > 40 {
		s = string(r[:37]) + "..."
	}
	return s
}
