// Package bfs provides breadth-first search over an interaction graph and
// the coupled-cluster decomposition built on it.
//
// What
//
//   - BFS explores sites in non-decreasing hop distance from a start site and
//     returns a Result with visit Order, hop Depth and BFS-tree Parent links.
//   - Clusters partitions all sites into maximal sets connected by non-zero
//     couplings. Sites in different clusters never interact, so the Boltzmann
//     weight of the whole system factorizes over clusters.
//   - An edge filter (WithEdgeFilter) decides which couplings are followed;
//     Clusters always skips zero couplings.
//   - MaxDepth limits the search radius (d>0) or disables the limit (d==0).
//
// Determinism
//
//	core.Neighbors returns edges ordered by the neighbor's site index and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//	Clusters are listed by their smallest site index, members ascending.
//
// Complexity (V = sites, E = couplings)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
//	path, err := res.PathTo("3")
//
//	clusters, err := bfs.Clusters(g)
//	fmt.Println(len(clusters), "independent clusters")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start site does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNoPath               from PathTo when the site was not reached.
//   - ctx.Err() when the WithContext context is cancelled.
package bfs
