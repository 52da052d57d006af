// Package brief parses the campaign brief format, a small block language
// the CLI reads so a whole asset request lives in one reviewable file:
//
//	brief "spring-launch" {
//	    format: story
//	    brand: "Acme"
//	    title: "Spring drop"
//	    tags: ["#spring", "#drop"]
//	    content {
//	        "Everything new this season,"
//	        "in one place."
//	    }
//	}
package brief

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/promoforge/compositor/asset"
)

var (
	briefLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][{},:;]`},
	})

	briefParser = participle.MustBuild[Brief](
		participle.Lexer(briefLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Brief is the root AST node of a brief file.
type Brief struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Name       StringLiteral  `parser:"Newline* 'brief' @String?"`
	Statements []*Statement   `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Statement is one entry inside the brief block.
type Statement struct {
	Content    *ContentBlock `parser:"  @@"`
	Assignment *Assignment   `parser:"| @@"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' Newline* @@"`
}

// Value is a string, a bare word, or an array of strings.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Word   *string        `parser:"| @Ident"`
	Array  *ArrayValue    `parser:"| @@"`
}

func (v *Value) text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Word != nil:
		return *v.Word
	default:
		return ""
	}
}

// ArrayValue captures `[ ... ]` lists.
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// ContentBlock holds the body text, one string per line of the file.
type ContentBlock struct {
	Lines []StringLiteral `parser:"'content' '{' Newline* ( @String Newline* )* '}'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse reads a brief from r.
func Parse(r io.Reader) (*Brief, error) {
	return briefParser.Parse("", r)
}

// ParseString reads a brief from a string.
func ParseString(input string) (*Brief, error) {
	return briefParser.ParseString("", input)
}

// Request assembles the render request the brief describes. Content lines
// are joined into one flowing body; wrapping happens at layout time.
func (b *Brief) Request() (asset.Request, error) {
	req := asset.Request{Format: asset.Square}
	for _, stmt := range b.Statements {
		switch {
		case stmt.Content != nil:
			parts := make([]string, 0, len(stmt.Content.Lines))
			for _, line := range stmt.Content.Lines {
				parts = append(parts, string(line))
			}
			req.Content = strings.Join(parts, " ")
		case stmt.Assignment != nil:
			if err := applyAssignment(&req, stmt.Assignment); err != nil {
				return asset.Request{}, err
			}
		}
	}
	if err := req.Validate(); err != nil {
		return asset.Request{}, err
	}
	return req, nil
}

func applyAssignment(req *asset.Request, a *Assignment) error {
	switch a.Key {
	case "format":
		format, err := asset.ParseFormat(a.Value.text())
		if err != nil {
			return fmt.Errorf("brief: %w", err)
		}
		req.Format = format
	case "brand":
		req.BrandName = a.Value.text()
	case "title":
		req.Title = a.Value.text()
	case "tags":
		if a.Value == nil || a.Value.Array == nil {
			return fmt.Errorf("brief: tags must be an array")
		}
		for _, v := range a.Value.Array.Values {
			if tag := v.text(); tag != "" {
				req.Hashtags = append(req.Hashtags, tag)
			}
		}
	case "content":
		req.Content = a.Value.text()
	default:
		return fmt.Errorf("brief: unknown key %q", a.Key)
	}
	return nil
}
