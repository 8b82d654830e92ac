// Package paths aggregates all-sources shortest-path distances over a graph.
//
// AverageShortestPath runs Dijkstra from every vertex and averages every
// finite distance it finds, including each vertex's zero distance to itself.
// Including the self pairs pulls the average toward zero compared with an
// average over distinct pairs; MeanDistinctDistance gives that second
// figure and Summary returns both with their pair counts.
//
// Both averages return 0 when there is nothing to average (no vertices, or
// no distinct reachable pairs). Negative weights are reported as an error
// from the underlying Dijkstra run.
package paths
