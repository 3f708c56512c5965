// Package datasets registers the registry and registrar dataset definitions
// with the core registry. Import this package to ensure they are registered.
//
// Each dataset file uses init() to register itself. Its FieldSpecs drive
// core.NormalizeRow, which applies the same rules to both datasets:
//
//   - The key column (tld, iana_id) must be non-blank or the row is skipped
//   - Multi-line columns (name, link, email, form) become string lists
//   - Free-text columns are trimmed; blank cells become null
package datasets
