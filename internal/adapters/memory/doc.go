// Package memory provides in-process implementations of the client ports.
// They back local development and demos: a fixed set of sample invoices and
// tenants, a placeholder PDF rendition, and an audit writer that only logs.
package memory
