package reader

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/contour/model"
)

// fontInfo is what the span pipeline needs to know about a page font:
// its base name and whether the name marks it as a bold face.
type fontInfo struct {
	name string
	bold bool
}

// isBoldFont reports whether a font name indicates a bold face. PDF
// fonts encode weight in the name ("Helvetica-Bold", "NotoSans-Black");
// there is no reliable flag elsewhere without parsing the descriptor.
func isBoldFont(name string) bool {
	n := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}

// kerningSpaceThreshold is the TJ adjustment (in thousandths of text
// space) beyond which a gap is treated as a word space rather than
// kerning.
const kerningSpaceThreshold = -200

// widthPerRune approximates glyph advance as a fraction of the font
// size. Without per-glyph width tables this is the best cheap estimate;
// the pipeline only uses widths for rough geometry, never for layout.
const widthPerRune = 0.5

// contentParser walks one page's content stream and accumulates text
// spans. Text between positioning operators forms one span; Td, TD, Tm,
// T*, and ET all flush the current run.
type contentParser struct {
	page       int
	pageHeight float64
	fonts      map[string]fontInfo

	spans []model.TextSpan

	font    fontInfo
	size    float64
	scale   float64
	leading float64
	x, y    float64

	buf  strings.Builder
	bufX float64
	bufY float64
}

func newContentParser(page int, pageHeight float64, fonts map[string]fontInfo) *contentParser {
	return &contentParser{
		page:       page,
		pageHeight: pageHeight,
		fonts:      fonts,
		scale:      1,
	}
}

// parse runs the parser over raw content-stream bytes and returns the
// spans found, in stream order.
func (p *contentParser) parse(data []byte) []model.TextSpan {
	lex := newLexer(data)
	var operands []token

	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		if tok.kind != tokOperator {
			operands = append(operands, tok)
			continue
		}
		p.apply(tok.name, operands)
		operands = operands[:0]
	}

	p.flush()
	return p.spans
}

// apply executes one operator against the current text state. Unknown
// operators are ignored; a content stream is full of painting operators
// that carry no text.
func (p *contentParser) apply(op string, operands []token) {
	switch op {
	case "BT":
		p.flush()
		p.x, p.y = 0, 0
		p.leading = 0
		p.scale = 1
	case "ET":
		p.flush()
	case "Tf":
		if n := len(operands); n >= 2 {
			if name, ok := operands[n-2].asName(); ok {
				p.font = p.fonts[name]
			}
			if v, ok := operands[n-1].asNumber(); ok {
				p.size = v
			}
		}
	case "TL":
		if v, ok := lastNumber(operands); ok {
			p.leading = v
		}
	case "Td":
		p.moveTo(operands, false)
	case "TD":
		p.moveTo(operands, true)
	case "Tm":
		if len(operands) >= 6 {
			p.flush()
			// Effective size scales with the matrix; PDFs commonly set
			// a unit font size and size the text through Tm.
			if d, ok := operands[len(operands)-3].asNumber(); ok && d != 0 {
				p.scale = math.Abs(d)
			}
			if e, ok := operands[len(operands)-2].asNumber(); ok {
				p.x = e
			}
			if f, ok := operands[len(operands)-1].asNumber(); ok {
				p.y = f
			}
		}
	case "T*":
		p.nextLine()
	case "Tj":
		if s, ok := lastString(operands); ok {
			p.show(s)
		}
	case "'":
		p.nextLine()
		if s, ok := lastString(operands); ok {
			p.show(s)
		}
	case "\"":
		p.nextLine()
		if s, ok := lastString(operands); ok {
			p.show(s)
		}
	case "TJ":
		for _, t := range operands {
			switch t.kind {
			case tokString:
				p.show(t.str)
			case tokNumber:
				if t.num <= kerningSpaceThreshold {
					p.show(" ")
				}
			}
		}
	}
}

func (p *contentParser) moveTo(operands []token, setLeading bool) {
	if len(operands) < 2 {
		return
	}
	tx, okX := operands[len(operands)-2].asNumber()
	ty, okY := operands[len(operands)-1].asNumber()
	if !okX || !okY {
		return
	}
	p.flush()
	p.x += tx
	p.y += ty
	if setLeading {
		p.leading = -ty
	}
}

func (p *contentParser) nextLine() {
	p.flush()
	p.y -= p.leading
}

// show appends decoded text to the current run, anchoring the run at the
// current position if it is empty.
func (p *contentParser) show(s string) {
	if s == "" {
		return
	}
	if p.buf.Len() == 0 {
		p.bufX, p.bufY = p.x, p.y
	}
	p.buf.WriteString(s)
}

// flush emits the accumulated run as a span, converting the baseline
// position from PDF bottom-left coordinates to top-left.
func (p *contentParser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	text := p.buf.String()
	p.buf.Reset()

	size := p.size * p.scale
	if size <= 0 {
		size = 1
	}

	top := p.pageHeight - p.bufY - size
	if top < 0 {
		top = 0
	}
	width := widthPerRune * size * float64(len([]rune(text)))

	p.spans = append(p.spans, model.TextSpan{
		Text:     text,
		FontSize: size,
		FontName: p.font.name,
		Bold:     p.font.bold,
		Page:     p.page,
		BBox:     model.NewBBox(p.bufX, top, width, size),
	})
}

// token kinds produced by the content-stream lexer. Dictionaries and
// array brackets are skipped or dropped; only the token kinds the text
// operators consume are represented.
type tokenKind int

const (
	tokOperator tokenKind = iota
	tokNumber
	tokString
	tokName
)

type token struct {
	kind tokenKind
	num  float64
	str  string
	name string
}

func (t token) asNumber() (float64, bool) {
	return t.num, t.kind == tokNumber
}

func (t token) asName() (string, bool) {
	return t.name, t.kind == tokName
}

func lastNumber(operands []token) (float64, bool) {
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind == tokNumber {
			return operands[i].num, true
		}
	}
	return 0, false
}

func lastString(operands []token) (string, bool) {
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind == tokString {
			return operands[i].str, true
		}
	}
	return "", false
}

// lexer tokenizes a PDF content stream. It understands literal strings
// with nesting and escapes, hex strings, names, numbers, and operators,
// and skips comments and dictionary delimiters.
type lexer struct {
	data []byte
	pos  int
}

func newLexer(data []byte) *lexer {
	return &lexer{data: data}
}

func (l *lexer) next() (token, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case isPDFSpace(c):
			l.pos++
		case c == '%':
			l.skipComment()
		case c == '(':
			l.pos++
			return token{kind: tokString, str: l.literalString()}, true
		case c == '<':
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '<' {
				l.pos += 2 // dict open; contents tokenize normally
				continue
			}
			l.pos++
			return token{kind: tokString, str: l.hexString()}, true
		case c == '>':
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '>' {
				l.pos += 2
				continue
			}
			l.pos++
		case c == '[' || c == ']' || c == '{' || c == '}':
			l.pos++
		case c == '/':
			l.pos++
			return token{kind: tokName, name: l.name()}, true
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			return l.number(), true
		default:
			return token{kind: tokOperator, name: l.operator()}, true
		}
	}
	return token{}, false
}

func (l *lexer) skipComment() {
	for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
		l.pos++
	}
}

// literalString consumes a ( ) string, honoring balanced nested parens
// and backslash escapes including octal character codes.
func (l *lexer) literalString() string {
	var sb strings.Builder
	depth := 1
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch c {
		case '\\':
			l.pos++
			if l.pos >= len(l.data) {
				return sb.String()
			}
			e := l.data[l.pos]
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b', 'f':
				// Discard.
			case '\n':
				// Line continuation.
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for k := 0; k < 2 && l.pos+1 < len(l.data); k++ {
						nx := l.data[l.pos+1]
						if nx < '0' || nx > '7' {
							break
						}
						l.pos++
						val = val*8 + int(nx-'0')
					}
					sb.WriteByte(byte(val))
				} else {
					sb.WriteByte(e)
				}
			}
			l.pos++
		case '(':
			depth++
			sb.WriteByte(c)
			l.pos++
		case ')':
			depth--
			l.pos++
			if depth == 0 {
				return sb.String()
			}
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	return sb.String()
}

// hexString consumes a < > string; an odd final digit is padded with
// zero per the PDF spec.
func (l *lexer) hexString() string {
	var digits []byte
	for l.pos < len(l.data) && l.data[l.pos] != '>' {
		c := l.data[l.pos]
		if isHexDigit(c) {
			digits = append(digits, c)
		}
		l.pos++
	}
	if l.pos < len(l.data) {
		l.pos++ // closing >
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	var sb strings.Builder
	for i := 0; i+1 < len(digits); i += 2 {
		hi := hexVal(digits[i])
		lo := hexVal(digits[i+1])
		sb.WriteByte(byte(hi<<4 | lo))
	}
	return sb.String()
}

func (l *lexer) name() string {
	start := l.pos
	for l.pos < len(l.data) && !isPDFDelimiter(l.data[l.pos]) && !isPDFSpace(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

func (l *lexer) number() token {
	start := l.pos
	l.pos++
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			l.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(string(l.data[start:l.pos]), 64)
	if err != nil {
		return token{kind: tokNumber, num: 0}
	}
	return token{kind: tokNumber, num: v}
}

func (l *lexer) operator() string {
	start := l.pos
	l.pos++
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		if isPDFSpace(c) || isPDFDelimiter(c) || c == '+' || c == '-' {
			break
		}
		l.pos++
	}
	return string(l.data[start:l.pos])
}

func isPDFSpace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isPDFDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
