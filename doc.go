// Package strata provides the typed-column substrate for an in-memory
// analytical engine.
//
// The module is organized in layers:
//
//   - pkg/dtype: the logical type catalog (DataType, Field), zero-size
//     type markers, and the numeric marker hierarchy that binds each
//     numeric marker to its native Go scalar at compile time.
//
//   - pkg/physical: the marker-to-Arrow and DataType-to-Arrow backing
//     relations, plus checked downcasts from arrow.Array to native
//     slices. Every claim these relations make is enforced by a
//     conformance test.
//
//   - pkg/chunked: Arrow-backed typed columns assembled from one or
//     more contiguous chunks, with element access, validity tracking,
//     and elementwise arithmetic.
//
//   - pkg/rolling: sliding-window aggregations (sum, mean, median,
//     quantile, min, max, variance, standard deviation) over chunked
//     columns, with configurable window size, minimum observation
//     counts, centering, boundary closure, and weights.
//
// Supporting packages cover structured errors (pkg/strataerrors),
// logging (pkg/logger), and configuration loading (pkg/config). The
// strata binary in cmd/strata inspects Arrow IPC files and runs
// rolling aggregations from the command line.
package strata
