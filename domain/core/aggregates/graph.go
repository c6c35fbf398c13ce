package aggregates

import (
	"wordgraph/domain/core/valueobjects"
)

// Node is a single term in a related-words graph.
// ID and Label always carry the same trimmed term.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Link connects two nodes by their IDs
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the node/link structure handed to the visualization layer.
// Nodes and links keep discovery order and are never deduplicated: the same
// term reached twice appears twice.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// NewGraph creates an empty graph whose slices serialize as [] rather than null
func NewGraph() *Graph {
	return &Graph{
		Nodes: []Node{},
		Links: []Link{},
	}
}

// NewNode creates a node for a term
func NewNode(term valueobjects.Term) Node {
	return Node{ID: term.String(), Label: term.String()}
}

// AddNode appends a node for the given term
func (g *Graph) AddNode(term valueobjects.Term) {
	g.Nodes = append(g.Nodes, NewNode(term))
}

// Connect appends a directed link from hub to leaf
func (g *Graph) Connect(hub, leaf valueobjects.Term) {
	g.Links = append(g.Links, Link{Source: hub.String(), Target: leaf.String()})
}

// AddLeaf appends the leaf node and the hub->leaf link in one step
func (g *Graph) AddLeaf(hub, leaf valueobjects.Term) {
	g.AddNode(leaf)
	g.Connect(hub, leaf)
}

// Append splices another graph's nodes and links onto the end of this one,
// keeping the other graph's internal order.
func (g *Graph) Append(other *Graph) {
	if other == nil {
		return
	}
	g.Nodes = append(g.Nodes, other.Nodes...)
	g.Links = append(g.Links, other.Links...)
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// LinkCount returns the number of links
func (g *Graph) LinkCount() int {
	return len(g.Links)
}

// IsEmpty reports whether the graph has no nodes and no links
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0 && len(g.Links) == 0
}

// NewStarGraph builds the one-level graph for a hub and its related terms:
// the hub node first, then one leaf node and one hub->leaf link per term.
func NewStarGraph(hub valueobjects.Term, related []valueobjects.Term) *Graph {
	graph := &Graph{
		Nodes: make([]Node, 0, len(related)+1),
		Links: make([]Link, 0, len(related)),
	}
	graph.AddNode(hub)
	for _, term := range related {
		graph.AddLeaf(hub, term)
	}
	return graph
}
