// Package modmeta describes the loadable units of a session: mod
// descriptors, their declared versions and dependency lists, and the order
// they should be registered in.
//
// The dependency-string grammar and the two JSON manifests (info.json,
// mod-list.json) are bit-exact wire formats; everything else here is
// in-memory bookkeeping. The load-order comparator is a best-effort hint for
// a stable sort, not a topological sort: cyclic required dependencies are
// not detected and produce an arbitrary (but stable) order.
package modmeta
