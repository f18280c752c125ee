// Package scaffold renders the markup file of a generated element. Components
// get a single heading; pages extend the shared layout template and fill its
// title and content blocks. Templates are embedded in the binary.
package scaffold
