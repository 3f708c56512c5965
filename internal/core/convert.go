package core

// convert.go provides the cell normalizers applied to every CSV row.
//
// Registry data is hand-maintained in spreadsheets, so cells arrive with:
//   - Stray whitespace around values and around each line of a cell
//   - Multi-line cells holding several values (one per line)
//   - Blank cells that must become null, not ""
//
// Optional text is carried as pgtype.Text: Valid=false is "absent".

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ToPgText converts a string to pgtype.Text.
// Returns invalid if the string is empty or only whitespace.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// OptionalText is a string that distinguishes "no value" from a value.
// Absent values encode as JSON null.
type OptionalText struct {
	pgtype.Text
}

// ToOptional trims s and maps blank input to an absent value.
func ToOptional(s string) OptionalText {
	return OptionalText{ToPgText(s)}
}

// Some returns a present OptionalText holding s as-is.
func Some(s string) OptionalText {
	return OptionalText{pgtype.Text{String: s, Valid: true}}
}

// MarshalJSON encodes an absent value as null.
// HTML escaping is decided by the outer encoder (see WriteDocument).
func (o OptionalText) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.String)
}

// SplitList splits a multi-line cell into its entries.
// Each line is trimmed and blank lines are dropped; order is kept.
// The result is never nil so it encodes as [] rather than null.
func SplitList(s string) []string {
	out := []string{}

	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}

	for _, item := range strings.Split(s, "\n") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseIntKey parses a trimmed integer key such as an IANA registrar ID.
func ParseIntKey(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		idx[key] = i
	}
	return idx
}

// CleanCell removes common spreadsheet artifacts from a header cell:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
//
// Data cells are not passed through CleanCell; their quotes are content.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}
