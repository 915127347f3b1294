// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TableSource: Loads raw string tables (the ingestion collaborator)
//   - SymbolCatalog: Supplies the 18 weekly symbol graphics
//   - OverrideStore: Per-package label override persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Batch run history. Without it, runs are not recorded.
//   - BatchSink: Delivery of generated batches. The CLI falls back to
//     writing the file itself.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
