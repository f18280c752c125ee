// Package config manages user-level settings stored at ~/.vitepug/config.yaml.
// It provides functions to load, read, and write keys such as the template
// repository URL, the package manager used to install dependencies, and the
// marker directory that identifies a project root.
package config
