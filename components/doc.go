// Package components partitions a core.Graph into connected components
// (undirected) or strongly connected components (directed).
//
// Connected repeatedly picks the lowest unvisited handle, runs a BFS from it
// and collects every reached vertex as one component. The result is an exact
// partition of the vertex set:
//
//   - every vertex is in exactly one component;
//   - isolated vertices form singleton components;
//   - members are sorted by handle and components are ordered by their
//     smallest handle, so output is stable for a given graph.
//
// Labels returns the same partition as vertex labels. On a similarity graph
// labels can repeat inside and across components.
//
// Strong handles directed graphs with Kosaraju's two-pass depth-first search:
// a full dfs walk records finish order, then a walk over reversed edges,
// rooted in decreasing finish order, yields one tree per strongly connected
// component. Output follows the same ordering rules as Connected.
//
// Time: O(V + E). Memory: O(V).
package components
