package model

// Package model defines domain data structures used across the app: remote
// and local wallpaper records, search queries, download tasks and status enums.
// Structures are plain values so the gallery can snapshot them for the UI.
