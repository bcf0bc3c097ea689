// Package watch re-reads the open document when it changes on disk.
//
// A Controller observes exactly one file path through fsnotify and can be
// retargeted at runtime without racing the change-detection loop: retarget
// requests go through a single-slot last-write-wins channel that the loop
// drains before each wait. Change events refresh the shared document state
// and notify the presentation layer; transient read failures during a
// write-in-progress are skipped, never escalated.
package watch
