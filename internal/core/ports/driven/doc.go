// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogSource: Supplies the professional catalog once at startup
//   - Scheduler: Runs deferred, cancellable callbacks (notification expiry)
//
// # Optional Interfaces
//
//   - SettingsStore: Persists user settings. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
