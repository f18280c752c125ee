// Package project locates the root of a generated project and loads its
// directory layout. The root is the nearest ancestor that contains the
// dependency marker directory (node_modules by default). The layout names the
// source, components, pages, and utils directories plus the aggregator files,
// and can be overridden per project in .vitepug.yaml.
package project
