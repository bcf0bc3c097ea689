// Package daemon wires the glance subsystems into the single long-lived
// process that owns the display window.
//
// A Daemon holds the shared document state, the file watcher, the rendezvous
// server, and the history store, and enforces single-instance execution with
// a lock file. Opening a file - whether from the CLI, a forwarded launch, or
// a drag-and-drop request - funnels through one operation that validates,
// loads, swaps state, retargets the watcher, and signals the presentation
// layer.
package daemon
