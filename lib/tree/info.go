package tree

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/dTree/lib/tree/util"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplOak     Implementation = "oak"      // the recursive engine
	ImplOakView Implementation = "oak-view" // a live view into an oak tree
)

// TreeInfo reports the state of a tree.
type TreeInfo struct {
	Implementation Implementation         `json:"implementation"`
	Items          int                    `json:"items"`       // number of items (Count)
	Nodes          int                    `json:"nodes"`       // number of nodes, the root included
	EmptyNodes     int                    `json:"empty_nodes"` // nodes without item and children, waiting to be trimmed
	Depth          int                    `json:"depth"`       // CountDepth
	Fanout         util.DistributionStats `json:"fanout"`      // child counts of all inner nodes
	Metadata       interface{}            `json:"metadata"`
}

// String returns a formatted representation of the info.
func (i TreeInfo) String() string {
	var sb strings.Builder

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	sb.WriteString(strings.ToUpper("tree info") + "\n")
	addField("Implementation", string(i.Implementation))
	addField("Items", fmt.Sprintf("%d", i.Items))
	addField("Nodes", fmt.Sprintf("%d", i.Nodes))
	addField("Empty Nodes", fmt.Sprintf("%d", i.EmptyNodes))
	addField("Depth", fmt.Sprintf("%d", i.Depth))
	addField("Fanout (mean)", fmt.Sprintf("%.2f", i.Fanout.Mean))
	addField("Fanout (max)", fmt.Sprintf("%.0f", i.Fanout.Max))
	addField("Fanout Quality", fmt.Sprintf("%.2f", i.Fanout.DistributionQuality))
	if i.Metadata != nil {
		addField("Metadata", fmt.Sprintf("%+v", i.Metadata))
	}
	return sb.String()
}
