package jsonsplit

// State is an entry of the analyzer nesting stack.
type State byte

const (
	// StateNone is reported when nothing is open.
	StateNone State = iota
	StateObject
	StateArray
	StateString
	StateStringEscape
	StateStringHex4
	StateStringHex3
	StateStringHex2
	StateStringHex1
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateObject:
		return "Object"
	case StateArray:
		return "Array"
	case StateString:
		return "String"
	case StateStringEscape:
		return "StringEscape"
	case StateStringHex4:
		return "StringHex4"
	case StateStringHex3:
		return "StringHex3"
	case StateStringHex2:
		return "StringHex2"
	case StateStringHex1:
		return "StringHex1"
	default:
		return "InvalidState"
	}
}

// IsString reports whether s is one of the string literal states.
func (s State) IsString() bool {
	return StateString <= s && s <= StateStringHex1
}

// next returns the state following a unicode escape digit.
func (s State) next() State {
	if s == StateStringHex1 {
		return StateString
	}
	return s + 1
}

const (
	delimString         = '"'
	delimEscape         = '\\'
	delimBeginObject    = '{'
	delimEndObject      = '}'
	delimBeginArray     = '['
	delimEndArray       = ']'
	delimValueSeparator = ','
	delimUnicode        = 'u'
)
