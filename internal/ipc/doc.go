// Package ipc implements the first-instance-wins rendezvous between glance
// launches.
//
// Every launch derives the same per-user unix socket location. A launch that
// can connect forwards its file path as a single unframed UTF-8 message and
// exits; a launch that cannot becomes the daemon and serves the socket for
// the rest of its life. Forwarded paths are validated and canonicalized
// before dispatch; a bad message is logged and dropped without disturbing the
// accept loop.
package ipc
