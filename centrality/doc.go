// Package centrality computes degree-based centrality over a core.Graph and
// buckets the scores into tiers.
//
// Two degree notions are offered and named for what they count:
//
//   - OutDegree: the number of entries in Neighbors(v). On the directed
//     rate-difference graph this is the number of edges v is the source of;
//     incoming edges are NOT counted. On an undirected graph it is the number
//     of incident edges. This is the default "degree centrality".
//   - TotalDegree: in + out on directed graphs, incident count (loops twice)
//     on undirected graphs.
//
// Classify splits scores into High / Medium / Low by fixed thresholds
// (degree > 1000 high, 500 < degree <= 1000 medium, else low). The thresholds
// reflect the expected scale of the dataset; they are not percentiles.
package centrality
