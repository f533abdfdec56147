package fontio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fontwork/fontdup"
)

// ParseNam reads a glyph-set .nam file: one 0xHHHH codepoint per line,
// optionally followed by a description, with '#' starting a comment.
// See the definitions under glyphsets/Lib/glyphsets/definitions/nam in
// the googlefonts/glyphsets repository.
func ParseNam(path string) ([]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var runes []rune
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		c, ok, err := parseNamLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if ok {
			runes = append(runes, c)
		}
	}
	return runes, sc.Err()
}

func parseNamLine(line string) (rune, bool, error) {
	if cut := strings.IndexByte(line, '#'); cut >= 0 {
		line = line[:cut]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false, nil
	}
	if !strings.HasPrefix(line, "0x") {
		fontdup.Logger().Warn("invalid nam line", "line", line)
		return 0, false, nil
	}
	raw := line[2:]
	if cut := strings.IndexFunc(raw, unicode.IsSpace); cut >= 0 {
		raw = raw[:cut]
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, false, fmt.Errorf("bad nam line %q: %w", line, err)
	}
	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, false, fmt.Errorf("bad codepoint 0x%X", v)
	}
	return rune(v), true, nil
}
