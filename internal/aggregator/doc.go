// Package aggregator links generated elements into the project's master
// stylesheet and master script. Links are appended after the existing content;
// nothing is deduplicated or reordered. A missing aggregator is reported with
// ErrAggregatorMissing and never created.
package aggregator
