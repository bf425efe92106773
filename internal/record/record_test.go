package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_PlainFields(t *testing.T) {
	line := Encode([]string{"1", "Mostafa", "secret", "mostafa", "m@x.com", "1", "0"})
	assert.Equal(t, "1,Mostafa,secret,mostafa,m@x.com,1,0", line)
}

func TestEncode_FieldWithDelimiter(t *testing.T) {
	line := Encode([]string{"5", "Hello, world"})
	assert.Equal(t, `5,"Hello, world"`, line)
}

func TestEncode_FieldWithDelimiterAndQuotes(t *testing.T) {
	// Quotes inside a comma-bearing field are doubled.
	line := Encode([]string{"5", `say "hi", please`})
	assert.Equal(t, `5,"say ""hi"", please"`, line)
}

func TestEncode_QuotesWithoutDelimiterPassThrough(t *testing.T) {
	// A field without the delimiter is emitted verbatim even when it
	// contains quotes. This is the historical behavior; Decode will drop
	// these quotes (see TestDecode_QuoteAsymmetry).
	line := Encode([]string{"1", `a "quoted" word`})
	assert.Equal(t, `1,a "quoted" word`, line)
}

func TestDecode_PlainLine(t *testing.T) {
	fields := Decode("1,Mostafa,secret,mostafa,m@x.com,1,0")
	require.Len(t, fields, 7)
	assert.Equal(t, []string{"1", "Mostafa", "secret", "mostafa", "m@x.com", "1", "0"}, fields)
}

func TestDecode_QuotedFieldKeepsDelimiter(t *testing.T) {
	fields := Decode(`5,"Hello, world"`)
	require.Len(t, fields, 2)
	assert.Equal(t, "Hello, world", fields[1])
}

func TestDecode_EmptyLine(t *testing.T) {
	fields := Decode("")
	assert.Equal(t, []string{""}, fields)
}

func TestDecode_TrailingDelimiter(t *testing.T) {
	fields := Decode("1,2,")
	assert.Equal(t, []string{"1", "2", ""}, fields)
}

func TestDecode_QuoteAsymmetry(t *testing.T) {
	// Doubled quotes are NOT collapsed on decode: every quote character
	// toggles quote mode and is dropped from the token. Round-tripping a
	// field that contains both a comma and quotes therefore loses the
	// quote characters. This pins the asymmetry so nobody "fixes" it and
	// silently changes the meaning of existing data files.
	encoded := Encode([]string{"1", `say "hi", please`})
	decoded := Decode(encoded)
	require.Len(t, decoded, 2)
	assert.Equal(t, `say hi, please`, decoded[1])
}

func TestRoundTrip_DelimiterFreeFields(t *testing.T) {
	cases := [][]string{
		{"1", "Mostafa", "secret", "mostafa", "m@x.com", "1", "0"},
		{"42", "-1", "3", "9", "0", "why is the sky blue?", ""},
		{""},
		{"a", "", "c"},
	}
	for _, fields := range cases {
		assert.Equal(t, fields, Decode(Encode(fields)), "fields %q", fields)
	}
}

func TestRoundTrip_QuotedCommaField(t *testing.T) {
	// Quote-wrapping is reversible as long as the field has no embedded
	// quote characters of its own.
	fields := []string{"7", "one, two, three", "tail"}
	assert.Equal(t, fields, Decode(Encode(fields)))
}
