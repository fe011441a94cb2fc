package jsonsplit

var (
	bytemapIsSpace  [256]byte
	bytemapIsHex    [256]byte
	bytemapIsEscape [256]byte
)

func init() {
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		bytemapIsSpace[c] = 1
	}
	for c := '0'; c <= '9'; c++ {
		bytemapIsHex[c] = 1
	}
	for c := 'a'; c <= 'f'; c++ {
		bytemapIsHex[c] = 1
		bytemapIsHex[c-'a'+'A'] = 1
	}
	for _, c := range []byte{'"', '\\', '/', 'b', 'f', 'n', 'r', 't'} {
		bytemapIsEscape[c] = 1
	}
}

func isSpace(c byte) bool {
	return bytemapIsSpace[c] == 1
}

func isHexDigit(c byte) bool {
	return bytemapIsHex[c] == 1
}

func isEscape(c byte) bool {
	return bytemapIsEscape[c] == 1
}
