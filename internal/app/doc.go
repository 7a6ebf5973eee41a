// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the submission lifecycle from parameter
// decoding through descriptor compilation to engine handoff and status
// follow, decoupled from any specific entrypoint.
package app
