// Package postgres implements the tenant store and audit writer client ports
// on a pgx connection pool.
package postgres
