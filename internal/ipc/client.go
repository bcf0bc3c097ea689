package ipc

import (
	"net"
	"time"
)

const (
	dialTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
)

// ProbeAndForward attempts to hand path to an already-running daemon. It
// returns true when the path was written, in which case the caller should
// exit. Any connection failure means no (live) daemon owns the socket; that
// is the normal signal to become the daemon, not an error.
//
// The message is fire-and-forget: one write of the UTF-8 path, then close.
// The server infers end-of-message from the connection closing.
func ProbeAndForward(socket, path string) bool {
	conn, err := net.DialTimeout("unix", socket, dialTimeout)
	if err != nil {
		return false
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_, err = conn.Write([]byte(path))
	return err == nil
}
