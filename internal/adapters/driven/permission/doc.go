// Package permission provides PermissionRequester implementations.
//
// Adapters:
//   - Prompter: asks on the controlling terminal
//   - Static: fixed answer, for non-interactive surfaces
//   - Router: switches requester while a surface owns the terminal
package permission
