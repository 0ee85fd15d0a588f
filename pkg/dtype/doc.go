// Package dtype is the logical type system of the Strata columnar engine.
//
// It provides three tightly layered facilities:
//
//  1. The logical type catalog: DataType, a closed, recursively nestable
//     description of every representable column type, plus Field, which
//     pairs a column name with its type. DataType values are immutable and
//     compared structurally.
//
//  2. Type markers: one zero-size tag per logical type (Int32Type,
//     StringType, ListType, ...) used as compile-time dispatch keys by
//     generic kernels. Every marker recovers its canonical DataType via
//     DType(); for parameterized types the recovered value is a documented
//     placeholder, never the authoritative instance parameters.
//
//  3. The numeric trait hierarchy: the Native, IntegerNative and
//     FloatNative constraints, the NumericMarker binding between a marker
//     and exactly one machine scalar, and the native-scalar helpers
//     (bounds, casts, float-ness) that let arithmetic and aggregation
//     kernels be written once across every supported width.
//
// Everything in this package is a pure value or a stateless tag; there is
// no shared mutable state and concurrent use needs no synchronization.
package dtype
