// Package todo parses, orders, and appends entries in the store file.
//
// The store file (todo.txt) is line-oriented UTF-8 text, one entry per
// line:
//
//	<decimal-index><space><content>
//
// The index is a base-10 signed integer; content is everything after
// the first space and may itself contain spaces. A single empty
// trailing line is tolerated. Nothing enforces index uniqueness or
// contiguity — duplicate indices are legal input.
//
// Parsing is fail-fast: the first line whose leading token does not
// parse as an integer aborts the whole operation. Skipping bad lines
// would silently change output for malformed files, so it is
// deliberately not done.
//
// Entries are ordered by index alone. Two entries sharing an index
// compare equal regardless of content and keep their input order.
package todo
