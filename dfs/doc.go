// Package dfs implements depth-first search on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): recursive depth-first traversal from one root,
//     or over every vertex with WithFullTraversal. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Walking edges backwards (WithReverse), i.e. the transpose graph
//   - An explicit root order for forest traversal (WithRoots)
//
// Why:
//
//	The post-order of a full traversal together with a second, reversed
//	traversal in decreasing finish order yields strongly connected
//	components (Kosaraju); see components.Strong.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook cost.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start handle not in graph (single-root mode)
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
