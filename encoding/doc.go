// Package encoding converts puzzle text fields between stored bytes and Go
// strings.
//
// Files before format version 2.0 store text as ISO-8859-1; later versions
// store UTF-8. Both encodings are strict: decoding rejects bytes that are not
// valid in the encoding and encoding rejects runes the encoding cannot
// represent, so a string never changes silently on a round trip.
//
// Text fields are NUL-terminated on disk, so neither encoding accepts a string
// containing U+0000.
//
//	b, err := encoding.Latin1.Encode("Café")   // []byte{'C', 'a', 'f', 0xE9}
//	s, err := encoding.UTF8.Decode([]byte("☃")) // "☃"
package encoding
