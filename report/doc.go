// Package report renders the outcome of an optimizer run for humans:
// a convergence chart (PNG/SVG/PDF, chosen by file extension) and a plain
// text route summary.
//
// Both functions are pure consumers of an aco.Result; neither mutates it.
package report
