// Package document owns the shared "what file is open right now" state.
//
// A Document bundles content, canonical path, display name, and size class
// as one value; State guards exactly one Document and swaps it atomically so
// readers never observe a path that does not match the content. Read
// implements the load contract shared by the CLI, the rendezvous server, and
// the file watcher, and ValidatePath is the gate every externally supplied
// path passes before it reaches the state.
package document
