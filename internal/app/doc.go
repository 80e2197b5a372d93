// Package app wires the editing core into a runnable application: logger
// construction, extension attachment, and the load → import → export run.
// Fatal startup problems panic and are recovered by the entrypoint, which
// turns them into a clean exit message.
package app
