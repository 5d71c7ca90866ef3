// Copyright 2025 The odata2openapi Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package docs

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// plainText reduces a CommonMark description to a one-line summary: the
// text content of the first paragraph, inline markup stripped and
// whitespace collapsed.
func plainText(markdown string) string {
	if markdown == "" {
		return ""
	}
	source := []byte(markdown)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var line string
	ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Kind() != ast.KindParagraph {
			return ast.WalkContinue, nil
		}
		var sb strings.Builder
		collectText(node, source, &sb)
		line = collapse(sb.String())
		return ast.WalkStop, nil
	})
	if line == "" {
		return collapse(markdown)
	}
	return line
}

// collectText appends the raw text of the inline nodes under node, turning
// line breaks into spaces.
func collectText(node ast.Node, source []byte, sb *strings.Builder) {
	if t, ok := node.(*ast.Text); ok {
		sb.Write(t.Segment.Value(source))
		if t.SoftLineBreak() || t.HardLineBreak() {
			sb.WriteByte(' ')
		}
		return
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		collectText(child, source, sb)
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
