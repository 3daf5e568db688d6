// Package astro provides the small amount of positional astronomy the
// exercises need: sky angles in the ICRS frame with sexagesimal parsing and
// formatting compatible with the ATNF catalog column conventions.
package astro
