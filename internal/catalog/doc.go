// Package catalog finds, for a rune, the first font in a directory that has
// a glyph for it.
//
// Font files are scanned in ascending filename order. Coverage tables are
// loaded lazily, the first time the scan reaches a file, and kept for the
// lifetime of the Catalog. The most recently successful font is memoized and
// tried first on the next lookup, which makes runs of consecutive codepoints
// from the same script cheap.
//
// A Catalog is not safe for concurrent use.
package catalog
