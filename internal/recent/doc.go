// Package recent persists the list of recently opened files.
//
// The store is a small sqlite database in the user cache dir, updated on
// every successful open and queried by the `glance recent` command. History
// is a convenience: a store that cannot be opened disables itself without
// affecting the daemon.
package recent
