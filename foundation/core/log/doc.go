// Package log emits template-formatted log lines.
//
// Package: log
// Title: hlog Line Emitter
// Description: This package renders a typed-placeholder template with the
//              template package, stamps it with the current time, the logger
//              name and the INFO label, and writes it as one line:
//
//                [2026-10-16 09:05:03.25  H-LOG INFO]  ---  3 items, cats found
//
//              A call either writes a complete line or returns an error and
//              writes nothing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Reworked into the template line emitter with a single INFO level
//
// Usage:
//   import hloglog "github.com/msto63/hlog/foundation/core/log"
//
//   // Package-level emitter writing to stdout
//   if err := hloglog.Info("-i items, -s found", 3, "cats"); err != nil {
//     // malformed template, unsupported argument or missing argument
//   }
//
//   // Dedicated logger
//   logger := hloglog.New().
//     WithName("BILLING").
//     WithOutput(os.Stderr)
//   logger.MustInfo("charged -d EUR to -s", 12.5, "acct-7")
package log
