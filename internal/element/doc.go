// Package element generates components and pages inside an existing project.
//
// A generation resolves the project root, resolves and validates the element
// name, creates the element directory (never merging into an existing one),
// writes the markup file, and optionally writes a style and a script file and
// links each into its aggregator. Directory-level failures abort the run;
// file-level failures are collected as issues and the run continues.
package element
