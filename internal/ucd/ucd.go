// Package ucd answers Unicode character database questions: general
// category, script and character name.
//
// Categories and scripts come from the Go unicode tables; names come from
// golang.org/x/text/unicode/runenames.
package ucd

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Unassigned is the general category of codepoints not in any table.
const Unassigned = "Cn"

// UnknownScript is the script of codepoints not in any script table.
const UnknownScript = "Unknown"

// Database is the character database the renderer consults.
type Database interface {
	// Category returns the two-letter general category of r.
	Category(r rune) string
	// Script returns the script name of r, with underscores as in the UCD
	// ("Old_Italic").
	Script(r rune) string
	// Name returns the character name of r, or "" if it has none.
	Name(r rune) string
}

// table pairs a name with its range table.
type table struct {
	name string
	rt   *unicode.RangeTable
}

// Tables is the Database backed by the tables compiled into the binary.
type Tables struct {
	categories []table
	scripts    []table
}

// New builds a Tables database. Lookups walk the tables in name order so
// results do not depend on map iteration.
func New() *Tables {
	t := &Tables{}
	for name, rt := range unicode.Categories {
		// Keep the two-letter leaf categories only, skipping major classes
		// (L, M, ...) and grouping aliases such as LC.
		if len(name) != 2 || !unicode.IsLower(rune(name[1])) {
			continue
		}
		t.categories = append(t.categories, table{name: name, rt: rt})
	}
	for name, rt := range unicode.Scripts {
		t.scripts = append(t.scripts, table{name: name, rt: rt})
	}
	sortTables(t.categories)
	sortTables(t.scripts)
	return t
}

// Category implements Database.
func (t *Tables) Category(r rune) string {
	for _, c := range t.categories {
		if unicode.Is(c.rt, r) {
			return c.name
		}
	}
	return Unassigned
}

// Script implements Database.
func (t *Tables) Script(r rune) string {
	for _, s := range t.scripts {
		if unicode.Is(s.rt, r) {
			return s.name
		}
	}
	return UnknownScript
}

// Name implements Database.
func (t *Tables) Name(r rune) string {
	return runenames.Name(r)
}

// Version returns the Unicode version of the category and script tables.
func (t *Tables) Version() string {
	return unicode.Version
}

func sortTables(ts []table) {
	slices.SortFunc(ts, func(a, b table) int { return strings.Compare(a.name, b.name) })
}
