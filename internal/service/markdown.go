// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const untitled = "Untitled"

// deriveTitle returns title if set, otherwise the text of the first heading
// in content, otherwise "Untitled".
func deriveTitle(title, content string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}

	source := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var heading string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading = strings.TrimSpace(plainText(n, source))
			if heading != "" {
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	if heading == "" {
		return untitled
	}
	return heading
}

// extractPreview renders the paragraphs of content as plain text, cut to
// limit runes with a trailing ellipsis. Headings are skipped since the title
// already shows them.
func extractPreview(content string, limit int) string {
	source := []byte(content)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var preview strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			return ast.WalkSkipChildren, nil
		case ast.KindParagraph, ast.KindTextBlock:
			if t := strings.TrimSpace(plainText(n, source)); t != "" {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(t)
			}
			if limit > 0 && utf8.RuneCountInString(preview.String()) > limit {
				return ast.WalkStop, nil
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return truncate(preview.String(), limit)
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 3 {
		return string([]rune(s)[:limit])
	}
	return strings.TrimSpace(string([]rune(s)[:limit-3])) + "..."
}
