// Package domain defines the core business entities for dclabel.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawTable: An untyped string table from an ingestion adapter
//   - CanonicalLabelRecord: A merged, typed package record
//   - LabelDocument: The draw instructions for one physical label
//   - Symbol: One slot of the weekly-rotating symbol catalog
//
// It also holds the pure engine functions: field coercion, brand
// splitting, case/quantity splitting, week-slot selection, text layout
// and label composition. All of them are total and deterministic, which
// is what makes batch output byte-for-byte reproducible.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
