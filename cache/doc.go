// Package cache stores encoded analysis reports under content-derived keys.
//
// Backends implement Cache: NullCache (disabled), FileCache (a directory,
// one JSON entry per key, for CLI use) and RedisCache (shared, for the HTTP
// server). Keys come from ReportKey, a SHA-256 over the spec and the engine
// options that change the report.
//
// A backend failure is an error, never a silent miss; callers decide whether
// to degrade. Instrumented reports hits, misses and failures to Hooks.
package cache
