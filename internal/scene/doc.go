// Package scene owns the hierarchy core: an owning tree of nodes.
//
// Ownership boundary:
// - node identity and parent/child linkage
// - append/remove/detach/release mutations
// - traversal and path resolution primitives
//
// The package is single-threaded by contract. Callers sharing a tree
// across goroutines must hold their own lock around every mutation,
// since an append or remove updates both sides of the relationship.
package scene
