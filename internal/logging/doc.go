// Package logging constructs the slog loggers used by the glance daemon and
// CLI.
//
// It offers a console handler tuned for a long-running desktop daemon
// (timestamp, level, component prefix, key=value attributes) plus a JSON
// handler for file output, and small attribute helpers so call sites stay
// terse. Obtain loggers through New or NewNop; never install a global
// default.
package logging
