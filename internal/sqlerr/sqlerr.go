// Package sqlerr handles database driver errors.
//
// It classifies Postgres errors by SQLSTATE and converts them into
// client-facing errs.HTTPError values (e.g. a foreign key violation
// becomes a 400 naming the missing parent).
package sqlerr
