// Package cssparse reads compiled stylesheets back into rule blocks.
package cssparse

import (
	"bytes"
	"context"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/stylesheet"
	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
)

// Parser parses stylesheet text into blocks comparable with the compiler's
// output.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a Parser. A nil logger disables diagnostics.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse returns the rule blocks of data in source order. Grouped selectors
// yield one block each. At-rules are skipped.
func (p *Parser) Parse(ctx context.Context, data []byte) ([]stylesheet.Block, error) {
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var blocks []stylesheet.Block
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.debug(ctx, "css parse error", "error", err)
				return blocks, err
			}
			p.debug(ctx, "parsed stylesheet", "blocks", len(blocks))
			return blocks, nil

		case css.BeginAtRuleGrammar:
			p.skipBlock(parser)

		case css.BeginRulesetGrammar:
			selectors := splitSelectors(data, parser.Values())
			decls := p.parseDeclarations(parser)
			for _, sel := range selectors {
				blocks = append(blocks, stylesheet.Block{
					Selector:     sel,
					Declarations: append([]stylesheet.Declaration(nil), decls...),
				})
			}
		}
	}
}

func (p *Parser) parseDeclarations(parser *css.Parser) []stylesheet.Declaration {
	var decls []stylesheet.Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls
		case css.DeclarationGrammar:
			decls = append(decls, stylesheet.Declaration{
				Property: strings.ToLower(string(data)),
				Value:    joinTokens(parser.Values()),
			})
		}
	}
}

func (p *Parser) skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

func (p *Parser) debug(ctx context.Context, msg string, fields ...interface{}) {
	if p.logger == nil {
		return
	}
	p.logger.Debug(ctx, msg, fields...)
}

// joinTokens rebuilds a value from tokens, collapsing whitespace runs to a
// single space.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		if v.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(v.Data)
	}

	var selectors []string
	for _, s := range strings.Split(sb.String(), ",") {
		if s = CanonicalSelector(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// CanonicalSelector collapses whitespace and writes child combinators as
// " > ", the form the compiler emits.
func CanonicalSelector(sel string) string {
	sel = strings.ReplaceAll(sel, ">", " > ")
	return strings.Join(strings.Fields(sel), " ")
}
