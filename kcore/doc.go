// Package kcore selects vertices by degree.
//
// FilterByMinDegree is a single-pass threshold: it keeps every vertex whose
// out-degree (centrality.OutDegree) is at least k. It does not recompute
// degrees after dropping vertices, so it is NOT a k-core. Results are
// monotone in k: raising k never adds a label.
//
// Peel is the true k-core: vertices with total degree below k are removed
// repeatedly, with degrees recomputed after each removal, until every
// remaining vertex has total degree at least k. PeelGraph returns the core
// itself as an induced subgraph.
package kcore
