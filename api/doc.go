// Package api define the contracts shared by the ordered container
// family - comparison and update functions, node references, the tree
// capability interface, cursors, ranges, the purge driver and the bulk
// sequence operations. Container adapters and the backing tree engine
// depend on this package, never on each other.
package api
