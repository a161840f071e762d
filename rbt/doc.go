// Package rbt implement an in-memory ordered index on a classic
// red-black tree with parent links. Nodes live in a slot arena and
// reference each other by slot index, every node is tagged with the
// owner tree's identity, so membership checks and the node order
// query work on stable references that survive rebalancing.
//
// The tree is configured at construction for unique or duplicate
// elements. Unique trees resolve an equal insert through an update
// rule without structural change; duplicate trees keep equal elements
// in insertion order.
package rbt
