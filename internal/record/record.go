// Package record implements the delimited line format shared by the user
// and question files.
//
// Each record is one line of comma-separated fields. A field containing a
// comma is wrapped in double quotes on encode, with any embedded quotes
// doubled. Decode strips quote characters without collapsing doubled
// pairs, so Encode and Decode are exact inverses only for fields that
// contain no quote characters. That asymmetry is part of the on-disk
// contract carried over from existing data files and is preserved
// deliberately rather than fixed.
package record

import "strings"

const (
	delimiter = ','
	quote     = '"'
)

// Encode joins fields into a single record line.
//
// Fields containing the delimiter are quote-wrapped with embedded quotes
// doubled. Fields without the delimiter are emitted verbatim, quotes
// included. No arity checks are performed; callers own field order and
// count.
func Encode(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escape(f)
	}
	return strings.Join(escaped, string(delimiter))
}

// escape quote-wraps a field only when it contains the delimiter.
func escape(field string) string {
	if !strings.ContainsRune(field, delimiter) {
		return field
	}
	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			b.WriteByte(quote)
		}
		b.WriteByte(field[i])
	}
	b.WriteByte(quote)
	return b.String()
}

// Decode splits a record line into fields.
//
// The scan toggles an in-quotes mode on every quote character and splits
// on the delimiter only outside quotes. Quote characters are dropped from
// the decoded token; doubled quotes are not collapsed back to one. A line
// with no delimiter decodes to a single field; the empty line decodes to
// one empty field.
func Decode(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == quote:
			inQuotes = !inQuotes
		case c == delimiter && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, current.String())
	return fields
}
