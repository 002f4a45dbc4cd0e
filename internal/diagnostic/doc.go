// Package diagnostic provides structured errors and warnings collected while
// checking binding applications across deployment environments.
//
// Key capabilities:
//   - Per application and environment diagnostics with stable codes
//   - Classification of binding, naming and settings failures
//   - A combined error for reporting
package diagnostic
