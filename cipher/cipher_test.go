package cipher

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/puz/errs"
)

func TestNewKey(t *testing.T) {
	t.Run("Digits", func(t *testing.T) {
		k, err := NewKey(7844)
		require.NoError(t, err)
		require.Equal(t, Key{7, 8, 4, 4}, k)
		require.Equal(t, 7844, k.Int())
		require.Equal(t, "7844", k.String())
	})

	t.Run("Zero padded", func(t *testing.T) {
		k, err := NewKey(42)
		require.NoError(t, err)
		require.Equal(t, Key{0, 0, 4, 2}, k)
		require.Equal(t, "0042", k.String())
	})

	t.Run("Out of range", func(t *testing.T) {
		_, err := NewKey(10000)
		require.ErrorIs(t, err, errs.ErrInvalidKey)

		_, err = NewKey(-1)
		require.ErrorIs(t, err, errs.ErrInvalidKey)
	})
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("1234")
	require.NoError(t, err)
	require.Equal(t, Key{1, 2, 3, 4}, k)

	for _, bad := range []string{"", "12345", "12a4", "-123"} {
		_, err := ParseKey(bad)
		require.ErrorIs(t, err, errs.ErrInvalidKey, bad)
	}
}

func TestScrambleString_PublishedExample(t *testing.T) {
	key := MustKey(1234)

	scrambled, err := ScrambleString("AEBFCDG", key)
	require.NoError(t, err)
	require.Equal(t, "MLOOPKJ", scrambled)

	plain, err := UnscrambleString("MLOOPKJ", key)
	require.NoError(t, err)
	require.Equal(t, "AEBFCDG", plain)
}

func TestScrambleString_Vectors(t *testing.T) {
	tests := []struct {
		key  int
		want string
	}{
		{0, "CROSSWORDPUZZLE"},
		{1, "PUSXOTEPUAZLEET"},
		{42, "YWXJRCFHPUIXUWS"},
		{9999, "MBYCCGYBNZEJJVO"},
	}

	for _, tt := range tests {
		t.Run(MustKey(tt.key).String(), func(t *testing.T) {
			got, err := ScrambleString("CROSSWORDPUZZLE", MustKey(tt.key))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScrambleSolution_PublishedExample(t *testing.T) {
	key := MustKey(1234)

	scrambled, err := ScrambleSolution("ABC..DEFG", 3, 3, key)
	require.NoError(t, err)
	require.Equal(t, "MOP..KLOJ", scrambled)

	plain, err := UnscrambleSolution("MOP..KLOJ", 3, 3, key)
	require.NoError(t, err)
	require.Equal(t, "ABC..DEFG", plain)
}

func TestScrambleSolution_Rectangular(t *testing.T) {
	grid := "ABCD.EFGH.KHIJKLM.NOPW.XYZ"
	key := MustKey(9721)

	scrambled, err := ScrambleSolution(grid, 13, 2, key)
	require.NoError(t, err)
	require.Equal(t, "YQDS.BKAW.GYUTMOE.MDLK.PAP", scrambled)

	plain, err := UnscrambleSolution(scrambled, 13, 2, key)
	require.NoError(t, err)
	require.Equal(t, grid, plain)
}

func TestScrambleGrid_DiagramlessSentinel(t *testing.T) {
	key := MustKey(3285)

	scrambled, err := ScrambleGrid("ABC::DEFG", 3, 3, key, ':')
	require.NoError(t, err)
	require.Equal(t, byte(':'), scrambled[3])
	require.Equal(t, byte(':'), scrambled[4])

	plain, err := UnscrambleGrid(scrambled, 3, 3, key, ':')
	require.NoError(t, err)
	require.Equal(t, "ABC::DEFG", plain)
}

func TestInverseLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		width := 1 + rng.Intn(15)
		height := 1 + rng.Intn(15)
		cells := make([]byte, width*height)
		for i := range cells {
			if rng.Intn(5) == 0 {
				cells[i] = '.'
			} else {
				cells[i] = byte('A' + rng.Intn(26))
			}
		}
		grid := string(cells)
		key := MustKey(rng.Intn(10000))

		scrambled, err := ScrambleSolution(grid, width, height, key)
		require.NoError(t, err)
		require.Len(t, scrambled, len(grid))

		plain, err := UnscrambleSolution(scrambled, width, height, key)
		require.NoError(t, err)
		require.Equal(t, grid, plain, "key %s, %dx%d", key, width, height)
	}
}

func TestInverseLaw_ShortStrings(t *testing.T) {
	for _, s := range []string{"", "A", "AB", "XYZ", "QWERTY"} {
		for _, n := range []int{0, 9, 1234, 9876} {
			key := MustKey(n)
			scrambled, err := ScrambleString(s, key)
			require.NoError(t, err)

			plain, err := UnscrambleString(scrambled, key)
			require.NoError(t, err)
			require.Equal(t, s, plain)
		}
	}
}

func TestScrambleString_DigitsBeyondLength(t *testing.T) {
	tests := []struct {
		plain string
		key   int
		want  string
	}{
		{"XYZ", 5, "XYZ"},
		{"XYZ", 1234, "GEI"},
		{"AB", 1234, "IF"},
		{"QWERTY", 9, "JZTFYE"},
		{"QWERTY", 9876, "UWABEJ"},
		{"ABCDEFGHIJKLM", 1234, "ROHQNJTUPSSPV"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%04d", tt.plain, tt.key), func(t *testing.T) {
			key := MustKey(tt.key)

			got, err := ScrambleString(tt.plain, key)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			plain, err := UnscrambleString(got, key)
			require.NoError(t, err)
			require.Equal(t, tt.plain, plain)
		})
	}
}

func TestScramble_Errors(t *testing.T) {
	key := MustKey(1234)

	_, err := ScrambleString("abc", key)
	require.ErrorIs(t, err, errs.ErrUnscrambleable)

	_, err = ScrambleSolution("AB3..DEFG", 3, 3, key)
	require.ErrorIs(t, err, errs.ErrUnscrambleable)

	_, err = ScrambleSolution("ABCD", 3, 3, key)
	require.ErrorIs(t, err, errs.ErrGridSize)

	_, err = ScrambleString("ABC", Key{1, 2, 3, 10})
	require.ErrorIs(t, err, errs.ErrInvalidKey)
}

func TestLockedChecksum(t *testing.T) {
	require.Equal(t, uint16(0xCC89), LockedChecksum("ABC..DEFG", 3, 3, '.'))
	require.Equal(t, uint16(0x19C3), LockedChecksum("CAT.H.DOGEAR.ZZ", 5, 3, '.'))

	// A scrambled grid carries the checksum of its plain form, not its own.
	scrambled, err := ScrambleSolution("ABC..DEFG", 3, 3, MustKey(1234))
	require.NoError(t, err)
	require.NotEqual(t, LockedChecksum("ABC..DEFG", 3, 3, '.'), LockedChecksum(scrambled, 3, 3, '.'))
}

func TestScrambleSolution_Vector(t *testing.T) {
	got, err := ScrambleSolution("CAT.H.DOGEAR.ZZ", 5, 3, MustKey(7844))
	require.NoError(t, err)
	require.Equal(t, "TBU.V.JDVIWX.AR", got)
}

func BenchmarkScrambleSolution(b *testing.B) {
	cells := make([]byte, 15*15)
	for i := range cells {
		if i%7 == 3 {
			cells[i] = '.'
		} else {
			cells[i] = byte('A' + i%26)
		}
	}
	grid := string(cells)
	key := MustKey(7844)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ScrambleSolution(grid, 15, 15, key)
	}
}
