// Package cartoshift resolves spatial conflicts in planar street
// networks: when generalization draws streets too close to tell apart
// at the target scale, it displaces their geometry until the required
// separation holds, while certifying that the network's topology
// survived untouched.
//
// 🚀 What is cartoshift?
//
//	A library and CLI for cartographic displacement:
//		• Geometry primitives: segments, vectors, closest-point search
//		• Topology graph: endpoint bucketing, intersections, adjacency
//		• Spatial index: R-tree lookup of proximity candidates
//		• Conflict detection: deterministic separation-violation scan
//		• Displacement engine: gradient descent over an energy functional
//		• Validation: before/after topology certification
//		• WKT I/O: line-oriented LINESTRING reading and writing
//
// ✨ Why choose cartoshift?
//
//   - Deterministic – same input, same output, whatever the worker count
//   - Topology-safe – intersection count, connectivity and clockwise
//     order are certified after displacement, never assumed
//   - Tunable – displacement strategy, energy weights and a hard cap on
//     how far any vertex may move
//
// Under the hood, everything is organized under seven subpackages:
//
//	geom/     — segments, vectors and planar distance primitives
//	spatial/  — R-tree index over segment bounding boxes
//	topology/ — the network graph: intersections, adjacency, components
//	conflict/ — separation-violation detection
//	displace/ — the displacement engine
//	validate/ — before/after topology comparison
//	wktio/    — WKT parsing and formatting
//
// The cartoshift binary under cmd/cartoshift wires the pipeline into
// resolve, conflicts and stats subcommands; examples/ holds runnable
// walkthroughs.
//
// Quick ASCII example:
//
//	before              after
//	━━━━━━━━━━          ━━━━━━━━━━
//	──────────
//	                    ──────────
//
//	Two streets too close are pushed apart symmetrically; both move,
//	neither tears away from the junctions it belongs to.
//
//	go get github.com/katalvlaran/cartoshift
package cartoshift
