// Package extension reads and writes the typed records that follow the core
// puzzle fields.
//
// Each record is laid out as:
//
//	code (4) | length uint16 | checksum uint16 | payload (length) | 0x00
//
// The checksum is the rolling checksum of the payload alone. Records are kept
// in a Set that remembers the order they were read in, so a parsed file
// serializes back with identical record order. New codes are appended.
//
// The known records have typed views. A view decodes its payloads when it is
// created and writes them back only when Commit is called:
//
//	r, err := extension.DecodeRebus(set, width*height, encoding.Latin1)
//	key, err := r.Add("HEART", 0, 24)
//	err = r.Commit()
package extension
