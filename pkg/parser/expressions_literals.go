package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"javalet/interpreter-go/pkg/ast"
)

// parseIntegerLiteral decodes int and long literals in every radix. negated is set when
// the literal is the operand of unary minus, which admits one extra magnitude.
func (ctx *parseContext) parseIntegerLiteral(node *sitter.Node, negated bool) (ast.Expression, error) {
	content := sliceContent(node, ctx.source)
	if content == "" {
		return nil, ctx.malformed(node, "empty integer literal")
	}

	text := strings.ReplaceAll(content, "_", "")
	long := false
	if last := text[len(text)-1]; last == 'l' || last == 'L' {
		long = true
		text = text[:len(text)-1]
	}

	base := 10
	lower := strings.ToLower(text)
	switch {
	case strings.HasPrefix(lower, "0x"):
		base, text = 16, text[2:]
	case strings.HasPrefix(lower, "0b"):
		base, text = 2, text[2:]
	case len(text) > 1 && text[0] == '0':
		base, text = 8, text[1:]
	}

	magnitude, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return nil, ctx.malformed(node, "integer number too large: %s", content)
	}

	var value int64
	switch {
	case long && base == 10:
		limit := uint64(math.MaxInt64)
		if negated {
			limit++
		}
		if magnitude > limit {
			return nil, ctx.malformed(node, "integer number too large: %s", content)
		}
		value = int64(magnitude)
	case long:
		value = int64(magnitude)
	case base == 10:
		limit := uint64(math.MaxInt32)
		if negated {
			limit++
		}
		if magnitude > limit {
			return nil, ctx.malformed(node, "integer number too large: %s", content)
		}
		value = int64(int32(uint32(magnitude)))
	default:
		if magnitude > math.MaxUint32 {
			return nil, ctx.malformed(node, "integer number too large: %s", content)
		}
		value = int64(int32(uint32(magnitude)))
	}

	lit := ast.NewIntegerLiteral(value, long)
	ctx.annotate(lit, node)
	return lit, nil
}

func (ctx *parseContext) parseFloatLiteral(node *sitter.Node) (ast.Expression, error) {
	content := sliceContent(node, ctx.source)
	if content == "" {
		return nil, ctx.malformed(node, "empty floating point literal")
	}

	text := strings.ReplaceAll(content, "_", "")
	single := false
	switch text[len(text)-1] {
	case 'f', 'F':
		single = true
		text = text[:len(text)-1]
	case 'd', 'D':
		text = text[:len(text)-1]
	}

	bitSize := 64
	if single {
		bitSize = 32
	}
	value, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && value != 0 {
			return nil, ctx.malformed(node, "floating point number too large: %s", content)
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, ctx.malformed(node, "malformed floating point literal: %s", content)
		}
	}

	lit := ast.NewFloatLiteral(value, single)
	ctx.annotate(lit, node)
	return lit, nil
}

func (ctx *parseContext) parseStringLiteral(node *sitter.Node) (ast.Expression, error) {
	content := sliceContent(node, ctx.source)
	if strings.HasPrefix(content, `"""`) {
		return nil, ctx.unsupported(node, "text block")
	}
	if len(content) < 2 || content[0] != '"' || content[len(content)-1] != '"' {
		return nil, ctx.malformed(node, "malformed string literal")
	}
	units, err := decodeEscapes(content[1 : len(content)-1])
	if err != nil {
		return nil, ctx.malformed(node, "%v", err)
	}
	lit := ast.NewStringLiteral(string(utf16.Decode(units)))
	ctx.annotate(lit, node)
	return lit, nil
}

func (ctx *parseContext) parseCharLiteral(node *sitter.Node) (ast.Expression, error) {
	content := sliceContent(node, ctx.source)
	if len(content) < 3 || content[0] != '\'' || content[len(content)-1] != '\'' {
		return nil, ctx.malformed(node, "malformed character literal")
	}
	units, err := decodeEscapes(content[1 : len(content)-1])
	if err != nil {
		return nil, ctx.malformed(node, "%v", err)
	}
	if len(units) != 1 {
		return nil, ctx.malformed(node, "character literal must hold exactly one UTF-16 unit: %s", content)
	}
	lit := ast.NewCharLiteral(rune(units[0]))
	ctx.annotate(lit, node)
	return lit, nil
}

// decodeEscapes resolves Java escape sequences and returns UTF-16 code units.
func decodeEscapes(raw string) ([]uint16, error) {
	out := make([]uint16, 0, len(raw))
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			out = append(out, utf16.Encode([]rune{r})...)
			continue
		}
		i++
		if i >= len(runes) {
			return nil, errors.New("unterminated escape sequence")
		}
		switch esc := runes[i]; esc {
		case 'b':
			out = append(out, '\b')
		case 't':
			out = append(out, '\t')
		case 'n':
			out = append(out, '\n')
		case 'f':
			out = append(out, '\f')
		case 'r':
			out = append(out, '\r')
		case 's':
			out = append(out, ' ')
		case '"', '\'', '\\':
			out = append(out, uint16(esc))
		case 'u':
			for i < len(runes) && runes[i] == 'u' {
				i++
			}
			if i+4 > len(runes) {
				return nil, errors.New("illegal unicode escape")
			}
			code, err := strconv.ParseUint(string(runes[i:i+4]), 16, 16)
			if err != nil {
				return nil, errors.New("illegal unicode escape")
			}
			out = append(out, uint16(code))
			i += 3
		default:
			if esc < '0' || esc > '7' {
				return nil, errors.New("illegal escape character " + strconv.QuoteRune(esc))
			}
			// Octal escapes take up to three digits, capped at \377.
			maxDigits := 2
			if esc <= '3' {
				maxDigits = 3
			}
			value := 0
			n := 0
			for n < maxDigits && i < len(runes) && runes[i] >= '0' && runes[i] <= '7' {
				value = value*8 + int(runes[i]-'0')
				i++
				n++
			}
			i--
			out = append(out, uint16(value))
		}
	}
	return out, nil
}
