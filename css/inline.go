package css

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is a single property declaration from an inline style
// attribute, in source order.
type Declaration struct {
	Property string
	Value    Value
}

// Parser parses inline style attributes into declaration lists.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new inline style parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-inline")}
}

// ParseDeclarations parses a style attribute value (semicolon-separated
// "property: value" pairs) into declarations in source order. Malformed
// fragments are skipped, never reported as an error: inline styles are
// handled as permissively as the rest of the document.
func (p *Parser) ParseDeclarations(style string) []Declaration {
	var decls []Declaration

	input := parse.NewInput(strings.NewReader(style))
	parser := css.NewParser(input, true)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("inline style parse ended", zap.Error(err))
			}
			return decls

		case css.DeclarationGrammar:
			prop := strings.ToLower(strings.TrimSpace(string(data)))
			values := parser.Values()
			if prop == "" || len(values) == 0 {
				continue
			}
			decls = append(decls, Declaration{
				Property: prop,
				Value:    p.parsePropertyValue(values),
			})

		case css.CustomPropertyGrammar:
			// custom properties (--var) are not mapped to design styles
			continue
		}
	}
}

// parsePropertyValue converts declaration tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			// color value such as #ff0000
			val.Keyword = string(t.Data)
		}
		return val
	}

	// function tokens (rgb(), url(), ...) and multi-value properties keep the
	// raw text as keyword
	val.Keyword = raw
	return val
}
