// Package builder converts a sequence of records into one of the two graph
// variants analysed by incarcnet.
//
//   - RateDifference: directed multigraph over jurisdictions. Vertices are the
//     distinct jurisdiction names in first-seen order. For every record pair
//     i<j (input order) whose incarceration-rate gap is below the threshold
//     (default 50), an edge runs from record i's vertex to record j's vertex
//     weighted by the gap. The same jurisdiction pair recurs across years, so
//     parallel edges are expected. Pairs of records that share a jurisdiction
//     are skipped: the graph never has self-loops.
//
//   - Similarity: undirected graph with one vertex per record. Labels repeat
//     when a jurisdiction appears in several years, so callers must not treat
//     labels as identities. Records i<j are joined when SimilarityScore
//     exceeds the threshold (default 0.7); the score is the edge weight.
//
// Both builders are O(n²) in the number of records and deterministic for a
// fixed input order. They do no I/O.
//
// Configuration primitives follow the functional-options style shared by the
// analysis packages:
//
//   - BuilderOption mutates a builderConfig before construction.
//   - Option constructors validate and panic on meaningless values
//     (a negative gap threshold, a similarity threshold outside [0,1)).
//   - Builders themselves never panic and return sentinel errors wrapped
//     with the method name (MethodRateDifference, MethodSimilarity).
//
// Lower-level composition is available through BuildGraph and Constructor,
// which is how the two public builders are assembled.
package builder
