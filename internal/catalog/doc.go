// Package catalog reads pulsar parameter tables in the ATNF CSV export
// layout and answers identifier lookups against them. A Source wraps a table
// location with a load-once cache so callers share one parsed catalog without
// package-level state, and Fetch downloads a fresh export over HTTP.
package catalog
