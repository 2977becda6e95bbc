package model

// Package model defines domain data structures used across the app: generation
// jobs, their tagged results, image kinds, status enums and the user-facing error
// taxonomy. Values are immutable once handed between goroutines.
