// Package analysis computes the grouped descriptive statistics and derived
// ratios behind the club performance report.
//
// The package is organized into three layers:
//
//  1. GroupBy: a generic grouped count/sum/mean aggregator
//  2. Ratio/Share: derived metrics that fail loudly on empty denominators
//  3. Summarizer: assembles the full ClubSummary from the three datasets
//
// All outputs are deterministically ordered so that rendering the same
// inputs twice produces byte-identical reports.
package analysis
