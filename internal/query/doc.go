// Package query implements the fixed catalogue of analytical operations
// over the webstore dataset.
//
// Every operation is a composition of four primitives over the entity
// model: filter (predicate over rows), resolve (follow a foreign key
// through the data source), group (partition by a derived key and reduce),
// and order/limit (deterministic sort plus optional truncation). The
// primitives are built once in primitives.go and parameterized per
// operation; no operation needs anything beyond them.
//
// Contract shared by all operations:
//   - read-only and stateless; an Engine is safe for concurrent use
//   - absent ids, unknown names, and malformed inputs (reversed date
//     range, non-positive top-N) yield empty results, never errors
//   - optional monetary fields count as zero when summed
//   - only collaborator failure propagates, wrapped in an OpError naming
//     the failing operation
//   - every ordered result has a deterministic tie-break, so repeated runs
//     over the same snapshot produce identical output
package query
