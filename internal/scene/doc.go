// Package scene implements the in-memory scene graph the inspector operates
// on: typed nodes with authored and resolved property records, variable
// references, world transforms, and the transactional update scope used by
// the commit pipeline.
//
// The scene graph is owned by the editor engine; the inspector packages
// (merge, props, aggregate, commit) treat nodes as read-only outside an
// UpdateScope. All mutation flows through Document.OpenUpdate, which stages
// per-node patches and commits them as a single undo step.
//
// Thread-safety model: a Document and its nodes are confined to one
// goroutine (the editor's event loop). Nothing in this package locks.
package scene
