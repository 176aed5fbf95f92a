// Package domain defines the core business entities for the payslip CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Payslip: An immutable pay period record referencing its document
//   - ViewState: A consistent snapshot of the sorted and filtered views
//   - AppError: A classified failure carrying a fixed user-facing message
//   - AppSettings: Storage, platform and retrieval configuration
//
// It also holds the pure date formatting and input validation helpers
// shared by every layer.
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
