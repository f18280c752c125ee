// Package bootstrap creates a new project from the template repository: it
// clones the template, writes the pages plugin configuration, and installs
// dependencies with the configured package manager.
package bootstrap
