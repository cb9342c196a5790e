/*
Package observability provides tools for monitoring Parley dialogues.

It includes Prometheus metrics exposed as lifecycle hooks, a way to chain
several hook sets into one, and an HTTP handler serving the metrics.
*/
package observability
