package jsonsplit

// Analyzer tracks JSON nesting depth one byte at a time.
//
// It only checks that closing delimiters match and that string escapes are
// well formed. Errors never roll back the stack so processing can resume
// with the next byte.
// The zero value is ready to use.
type Analyzer struct {
	stack []State
}

// Depth returns the number of open states.
func (a *Analyzer) Depth() int {
	return len(a.stack)
}

// Top returns the innermost open state or StateNone.
func (a *Analyzer) Top() State {
	if n := len(a.stack); n > 0 {
		return a.stack[n-1]
	}
	return StateNone
}

// InString reports whether the analyzer is inside a string literal.
func (a *Analyzer) InString() bool {
	return a.Top().IsString()
}

// Reset clears the stack.
func (a *Analyzer) Reset() {
	a.stack = a.stack[:0]
}

func (a *Analyzer) push(s State) {
	a.stack = append(a.stack, s)
}

func (a *Analyzer) pop() {
	a.stack = a.stack[:len(a.stack)-1]
}

func (a *Analyzer) replace(s State) {
	a.stack[len(a.stack)-1] = s
}

// Process consumes a single byte.
// The returned error is one of *StateError, *HexError or *EscapeError.
func (a *Analyzer) Process(c byte) error {
	switch top := a.Top(); top {
	case StateString:
		switch c {
		case delimString:
			a.pop()
		case delimEscape:
			a.replace(StateStringEscape)
		}
		return nil
	case StateStringEscape:
		if c == delimUnicode {
			a.replace(StateStringHex4)
			return nil
		}
		a.replace(StateString)
		if !isEscape(c) {
			return &EscapeError{Got: c}
		}
		return nil
	case StateStringHex4, StateStringHex3, StateStringHex2, StateStringHex1:
		a.replace(top.next())
		if !isHexDigit(c) {
			return &HexError{Got: c}
		}
		return nil
	default:
		switch c {
		case delimString:
			a.push(StateString)
		case delimBeginObject:
			a.push(StateObject)
		case delimBeginArray:
			a.push(StateArray)
		case delimEndObject:
			if top != StateObject {
				return &StateError{Got: top, Want: StateObject}
			}
			a.pop()
		case delimEndArray:
			if top != StateArray {
				return &StateError{Got: top, Want: StateArray}
			}
			a.pop()
		}
		return nil
	}
}
