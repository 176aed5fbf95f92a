// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RecordSource: Supplies the payslip collection at startup
//   - FileStore: The narrow storage surface documents are written through
//   - DocumentRenderer: Synthesises the bytes written for a payslip
//   - PermissionRequester: Asks the platform for a storage grant
//   - Viewer: Hands a stored document to an external application
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - StorageWatcher: Reports external changes to stored documents.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
