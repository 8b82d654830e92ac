// Package incarcnet builds and analyzes networks over per-state
// incarceration and violent-crime records.
//
// What is incarcnet?
//
//	A small analysis engine plus a CLI that brings together:
//		• Records: CSV ingestion, cleaning and per-100k rates
//		• Graphs: a directed rate-difference multigraph and an undirected
//		  similarity graph over jurisdiction-year records
//		• Metrics: degree centrality, tiers, average shortest path,
//		  k-filter / k-core, connected and strongly connected components
//		• Statistics: linear, quadratic and logarithmic fits, t-test,
//		  outliers and national trends
//		• Export: Graphviz DOT with cluster colouring and optional PNG
//
// Packages:
//
//	core/       — handle-based Graph, Vertex, Edge
//	record/     — Record, CSV loader, filters
//	builder/    — rate-difference and similarity constructors
//	centrality/ — degree scores and tier classifier
//	dijkstra/   — single-source shortest paths
//	paths/      — average shortest path
//	kcore/      — min-degree filter and k-core peeling
//	bfs/, dfs/  — traversals
//	components/ — connected and strongly connected components
//	stats/      — regression, t-test, descriptive statistics
//	export/     — DOT encoding, file export, rendering
//	config/, logging/, metrics/ — ambient stack
//	pipeline/   — orchestration, report, file watching
//	cmd/incarcnet — command-line entry point
//
// Quick start:
//
//	go run ./cmd/incarcnet analyze --input crime_and_incarceration_by_state.csv
package incarcnet
