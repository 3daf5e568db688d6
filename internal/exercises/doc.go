// Package exercises holds the course exercises registered with the
// interactive workbench.
package exercises
