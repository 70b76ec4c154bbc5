package mdr

// scopeKind identifies a structural element whose opening pushes a scope.
type scopeKind int

const (
	scopeDocument scopeKind = iota
	scopeHeading
	scopeQuote
	scopeEmphasis
	scopeStrong
	scopeStrike
	scopeMark
	scopeCode
	scopeLink
)

// scope is one open document element. level is only meaningful for
// headings.
type scope struct {
	kind  scopeKind
	level int
}

// scopeStack tracks the currently open elements. The base document scope is
// pushed at construction and never popped.
type scopeStack struct {
	scopes []scope
}

func newScopeStack() *scopeStack {
	s := &scopeStack{scopes: make([]scope, 1, 16)}
	s.scopes[0] = scope{kind: scopeDocument}
	return s
}

func (s *scopeStack) push(kind scopeKind, level int) {
	s.scopes = append(s.scopes, scope{kind: kind, level: level})
}

func (s *scopeStack) pop() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

func (s *scopeStack) has(kind scopeKind) bool {
	for _, sc := range s.scopes {
		if sc.kind == kind {
			return true
		}
	}
	return false
}

func (s *scopeStack) quoteDepth() int {
	depth := 0
	for _, sc := range s.scopes {
		if sc.kind == scopeQuote {
			depth++
		}
	}
	return depth
}

// isInlineScope reports whether a scope is pure inline formatting. Inline
// scopes never decide the text color; they only add attribute bits (or, for
// marks, a background) on top of the nearest enclosing color scope.
func isInlineScope(kind scopeKind) bool {
	switch kind {
	case scopeEmphasis, scopeStrong, scopeStrike, scopeMark:
		return true
	}
	return false
}

// resolveStyle computes the effective style for text under the given stack.
// The nearest non-inline scope decides foreground (and for inline code, the
// background); open inline scopes contribute their attribute bits; marks
// override with their fixed background and forced black foreground; quote
// background fills in when nothing nearer set one. A theme-imposed quote
// italic is cleared unless an emphasis span is explicitly open.
func resolveStyle(styles Styles, stack *scopeStack, italics bool) Style {
	st := styles.Text
	for i := len(stack.scopes) - 1; i >= 0; i-- {
		sc := stack.scopes[i]
		if isInlineScope(sc.kind) {
			continue
		}
		st = colorScopeStyle(styles, sc, stack)
		break
	}
	inQuote := false
	hasEmphasis := false
	hasStrong := false
	for _, sc := range stack.scopes {
		switch sc.kind {
		case scopeQuote:
			inQuote = true
		case scopeEmphasis:
			hasEmphasis = true
			st.Attrs |= styles.Emphasis.Attrs
		case scopeStrong:
			hasStrong = true
			st.Attrs |= styles.Strong.Attrs
		case scopeStrike:
			st.Attrs |= styles.Strike.Attrs
		}
	}
	if hasEmphasis && hasStrong {
		st.Attrs |= styles.EmphasisStrong.Attrs
	}
	if inQuote && !st.HasBG {
		st = st.withBG(styles.QuoteBG)
	}
	if stack.has(scopeMark) {
		st.FG = styles.Mark.FG
		st.HasFG = styles.Mark.HasFG
		st = st.withBG(styles.Mark.BG)
	}
	if !italics {
		st.Attrs &^= attrItalic
	}
	return st
}

func colorScopeStyle(styles Styles, sc scope, stack *scopeStack) Style {
	switch sc.kind {
	case scopeHeading:
		level := sc.level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return styles.Heading[level-1]
	case scopeCode:
		return styles.CodeInline
	case scopeLink:
		return styles.LinkText
	case scopeQuote:
		st := styles.Quote
		if !stack.has(scopeEmphasis) {
			st.Attrs &^= attrItalic
		}
		return st
	}
	return styles.Text
}
