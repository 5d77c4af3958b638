package extension

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/puz/checksum"
	"github.com/arloliu/puz/errs"
	"github.com/arloliu/puz/internal/cursor"
)

func record(code string, payload []byte, sum uint16) []byte {
	b := []byte(code)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(payload))) //nolint:gosec
	b = binary.LittleEndian.AppendUint16(b, sum)
	b = append(b, payload...)

	return append(b, 0)
}

func validRecord(code string, payload []byte) []byte {
	return record(code, payload, checksum.Sum(payload, 0))
}

func encodeSet(t *testing.T, set *Set) []byte {
	t.Helper()

	w := cursor.NewWriter(nil)
	defer w.Release()
	require.NoError(t, Encode(w, set))

	return w.Bytes()
}

func TestDecode(t *testing.T) {
	t.Run("Records and postscript", func(t *testing.T) {
		var data []byte
		data = append(data, validRecord("GEXT", []byte{0, 0x80, 0})...)
		data = append(data, validRecord("LTIM", []byte("42,1"))...)
		data = append(data, "\r\n\r\n"...)

		r := cursor.NewReader(data, nil)
		set, stored, err := Decode(r)
		require.NoError(t, err)
		require.Equal(t, []Code{CodeMarkup, CodeTimer}, set.Codes())
		require.Len(t, stored, 2)
		for _, s := range stored {
			require.NoError(t, s.Verify())
		}
		require.Equal(t, []byte("\r\n\r\n"), r.Rest())
	})

	t.Run("Empty input", func(t *testing.T) {
		set, stored, err := Decode(cursor.NewReader(nil, nil))
		require.NoError(t, err)
		require.Equal(t, 0, set.Len())
		require.Empty(t, stored)
	})

	t.Run("Truncated payload", func(t *testing.T) {
		data := validRecord("GEXT", make([]byte, 20))
		_, _, err := Decode(cursor.NewReader(data[:15], nil))
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("Missing padding", func(t *testing.T) {
		data := validRecord("LTIM", []byte("1,0"))
		_, _, err := Decode(cursor.NewReader(data[:len(data)-1], nil))
		require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	})

	t.Run("Bad checksum", func(t *testing.T) {
		data := record("RTBL", []byte(" 0:STAR;"), 0xBEEF)
		_, stored, err := Decode(cursor.NewReader(data, nil))
		require.NoError(t, err)

		err = stored[0].Verify()
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)

		var ce *errs.ChecksumError
		require.ErrorAs(t, err, &ce)
		require.Equal(t, "extension RTBL", ce.Which)
		require.Equal(t, uint64(0xBEEF), ce.Stored)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		var data []byte
		data = append(data, validRecord("LTIM", []byte("1,0"))...)
		data = append(data, validRecord("GEXT", []byte{0})...)
		data = append(data, validRecord("LTIM", []byte("2,1"))...)

		set, stored, err := Decode(cursor.NewReader(data, nil))
		require.NoError(t, err)
		require.Equal(t, []Code{CodeTimer, CodeMarkup}, set.Codes())
		got, _ := set.Get(CodeTimer)
		require.Equal(t, []byte("2,1"), got)
		require.Len(t, stored, 3)
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	var data []byte
	data = append(data, validRecord("ZZZZ", []byte("unknown"))...)
	data = append(data, validRecord("GRBS", []byte{0, 1, 0, 0})...)
	data = append(data, validRecord("RTBL", []byte(" 0:STAR;"))...)
	data = append(data, validRecord("EMPT", nil)...)

	set, _, err := Decode(cursor.NewReader(data, nil))
	require.NoError(t, err)
	require.Equal(t, data, encodeSet(t, set))
}

func TestEncode_Fidelity(t *testing.T) {
	var data []byte
	data = append(data, validRecord("LTIM", []byte("10,1"))...)
	data = append(data, validRecord("GEXT", []byte{0, 0, 0, 0})...)
	data = append(data, validRecord("XTRA", []byte("keep"))...)

	set, _, err := Decode(cursor.NewReader(data, nil))
	require.NoError(t, err)

	set.Set(CodeMarkup, []byte{0x80, 0, 0, 0x80})
	set.Set(CodeRebusTable, []byte(" 0:HEART;"))

	out := encodeSet(t, set)

	reread, stored, err := Decode(cursor.NewReader(out, nil))
	require.NoError(t, err)
	require.Equal(t, []Code{CodeTimer, CodeMarkup, {'X', 'T', 'R', 'A'}, CodeRebusTable}, reread.Codes())
	for _, s := range stored {
		require.NoError(t, s.Verify(), "checksum of %s must be recomputed", s.Code)
	}

	got, _ := reread.Get(CodeMarkup)
	require.Equal(t, []byte{0x80, 0, 0, 0x80}, got)
}

func TestEncode_TooLarge(t *testing.T) {
	set := NewSet()
	set.Set(CodeMarkup, make([]byte, 0x10000))

	w := cursor.NewWriter(nil)
	defer w.Release()
	require.ErrorIs(t, Encode(w, set), errs.ErrExtensionTooLarge)
	require.Equal(t, 0, w.Len())
}
