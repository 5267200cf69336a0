// Package maxpreps serializes a totals table into the MaxPreps
// pipe-delimited import format: a fixed supplier line, a header of Jersey
// plus the included fields, then one line per player. Values are never
// quoted or escaped.
package maxpreps

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sidelinestats/scorebook/internal/totals"
)

// ErrJerseyColumn indicates the required jersey column could not be
// resolved in the totals table. Fatal to the export only.
var ErrJerseyColumn = errors.New("missing required jersey column")

// Build serializes table to the import text. mapping binds totals columns
// to MaxPreps fields; declared is the sport's ordered field vocabulary
// (mapped fields outside it are appended after, in mapping order);
// jerseyColumn names the column holding jersey numbers and is resolved
// case-insensitively.
//
// Rows with an empty jersey value, and rows whose other fields are all
// empty, are omitted. Whole-number values render without a decimal point.
// The output uses \n line endings and ends with a trailing newline.
func Build(table totals.Table, mapping Mapping, declared []string, jerseyColumn string) (string, error) {
	jerseyResolved, ok := resolveColumn(table.Columns, jerseyColumn)
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrJerseyColumn, jerseyColumn, strings.Join(table.Columns, ", "))
	}

	// Field -> actual table column; later mapping entries win, matching
	// the mapping's role as an editable override list.
	reverse := make(map[string]string)
	for _, fm := range mapping {
		if col, ok := resolveColumn(table.Columns, fm.Column); ok {
			reverse[fm.Field] = col
		}
	}

	included := chooseFields(table, mapping, declared)
	header := append([]string{"Jersey"}, included...)

	lines := []string{SupplierID, strings.Join(header, "|")}
	for _, row := range table.Rows {
		jersey := totals.CellString(row[jerseyResolved])
		if jersey == "" {
			continue
		}
		values := []string{jersey}
		empty := true
		for _, field := range included {
			val := ""
			if col, ok := reverse[field]; ok {
				val = totals.CellString(row[col])
			}
			if val != "" {
				empty = false
			}
			values = append(values, val)
		}
		if empty {
			continue
		}
		lines = append(lines, strings.Join(values, "|"))
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// chooseFields picks the mapped fields that have at least one non-empty
// cell and are part of the declared vocabulary (or any field when the
// sport declares none), ordered declared-first then extras in mapping
// order.
func chooseFields(table totals.Table, mapping Mapping, declared []string) []string {
	declaredSet := make(map[string]bool, len(declared))
	for _, f := range declared {
		declaredSet[f] = true
	}

	var included []string
	seen := make(map[string]bool)
	for _, fm := range mapping {
		if fm.Field == "Jersey" || seen[fm.Field] {
			continue
		}
		if !hasColumn(table.Columns, fm.Column) {
			continue
		}
		if !columnHasValues(table, fm.Column) {
			continue
		}
		if len(declared) > 0 && !declaredSet[fm.Field] {
			continue
		}
		included = append(included, fm.Field)
		seen[fm.Field] = true
	}

	order := declared
	if len(order) == 0 {
		order = FootballFields
	}
	includedSet := make(map[string]bool, len(included))
	for _, f := range included {
		includedSet[f] = true
	}

	var sorted []string
	for _, f := range order {
		if includedSet[f] {
			sorted = append(sorted, f)
			includedSet[f] = false
		}
	}
	for _, f := range included {
		if includedSet[f] {
			sorted = append(sorted, f)
		}
	}
	return sorted
}

func columnHasValues(table totals.Table, column string) bool {
	for _, row := range table.Rows {
		if totals.CellString(row[column]) != "" {
			return true
		}
	}
	return false
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

// resolveColumn finds the actual column whose name matches
// case-insensitively, preferring an exact match.
func resolveColumn(columns []string, name string) (string, bool) {
	if hasColumn(columns, name) {
		return name, true
	}
	target := strings.ToLower(strings.TrimSpace(name))
	for _, c := range columns {
		if strings.ToLower(strings.TrimSpace(c)) == target {
			return c, true
		}
	}
	return "", false
}

// GuessJerseyColumn picks the most likely jersey column from a totals
// header, or "" when none looks plausible.
func GuessJerseyColumn(columns []string) string {
	candidates := []string{"jersey", "number", "player number", "no", "num", "player #", "player_num", "player_number"}
	lowered := make(map[string]string, len(columns))
	for _, c := range columns {
		lowered[strings.ToLower(c)] = c
	}
	for _, key := range candidates {
		if c, ok := lowered[key]; ok {
			return c
		}
	}
	for _, c := range columns {
		cl := strings.ToLower(c)
		if strings.Contains(cl, "jersey") || strings.Contains(cl, "number") || cl == "#" || cl == "no" || cl == "num" {
			return c
		}
	}
	return ""
}

var filenameStrip = regexp.MustCompile(`["'()]`)

// Filename sanitizes an export filename and ensures a .txt extension.
func Filename(name string) string {
	name = filenameStrip.ReplaceAllString(name, "")
	if !strings.HasSuffix(strings.ToLower(name), ".txt") {
		name += ".txt"
	}
	return name
}
