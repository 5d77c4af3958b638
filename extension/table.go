package extension

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/puz/encoding"
	"github.com/arloliu/puz/errs"
)

// parseTable decodes the " k:VALUE;" pairs used by RTBL and RUSR. Values are
// text in the puzzle's encoding. Entries without a colon are ignored.
func parseTable(payload []byte, enc encoding.Text) (map[int]string, error) {
	text, err := enc.Decode(payload)
	if err != nil {
		return nil, err
	}

	table := make(map[int]string)
	for _, entry := range strings.Split(text, ";") {
		key, value, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}

		k, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: table key %q", errs.ErrInvalidExtension, key)
		}
		table[k] = value
	}

	return table, nil
}

// formatTable encodes table with keys in ascending order, each padded to two
// columns and followed by a semicolon.
func formatTable(table map[int]string, enc encoding.Text) ([]byte, error) {
	var sb strings.Builder
	for _, k := range slices.Sorted(maps.Keys(table)) {
		if strings.ContainsAny(table[k], ":;") {
			return nil, fmt.Errorf("%w: table value %q contains a separator", errs.ErrInvalidExtension, table[k])
		}
		fmt.Fprintf(&sb, "%2d:%s;", k, table[k])
	}

	return enc.Encode(sb.String())
}
