// Package session owns the generator's interactive state and the rules that
// govern it: one job at a time, no close while busy, and exactly one
// rendering of each job's result.
package session
