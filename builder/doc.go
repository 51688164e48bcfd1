// Package builder produces deterministic CSR topology fixtures for tests,
// benchmarks, and the command-line tools.
//
// What
//
//   - Cycle(n): the directed ring i → (i+1) mod n.
//   - Path(n): the directed chain 0 → 1 → … → n-1.
//   - Complete(n): every ordered pair (u,v), u ≠ v.
//   - Grid(w, h): 4-neighborhood lattice, edges in both directions.
//   - RandomSparse(n, deg, opts...): n vertices with deg out-edges each,
//     endpoints drawn from a seeded generator.
//
// Why
//
//	Traversal correctness tests need graphs whose shortest-hop structure is
//	known in closed form (cycle, path, grid) next to adversarial ones that
//	are not (random sparse). Every generator emits edges in a stable,
//	documented order, so edge positions — which masks and edge slots are
//	indexed by — are reproducible across runs and machines.
//
// Determinism
//
//	Same parameters (and seed, where one applies) ⇒ byte-identical CSR
//	arrays. RandomSparse defaults to a fixed seed; WithSeed overrides it.
//
// Errors
//
//   - ErrTooFewVertices — n (or w, h) below the generator's minimum.
//   - ErrBadDegree      — RandomSparse degree negative or ≥ n.
package builder
