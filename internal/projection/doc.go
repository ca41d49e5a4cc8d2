// Package projection models FOMC rate projections and their reshaping.
//
// The Federal Reserve publishes each projection release as a wide table: one
// row per federal funds rate midpoint, one column per projection year plus a
// longer-run column, with cells counting the participants whose dot sits at
// that midpoint. Table holds that published shape. Projection is the long
// form this tool works in: one record per (meeting, year, midpoint) with a
// participant count. Reshaping helpers flatten, expand, filter and order
// records deterministically so identical inputs always produce identical
// output.
package projection
