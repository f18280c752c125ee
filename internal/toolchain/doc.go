// Package toolchain checks that the external tools a project depends on
// (git, Node.js and the package manager) are installed and recent enough.
package toolchain
