// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image/color"
	"strings"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
)

// PartKind is the variant of a Part.
type PartKind uint8

const (
	// TextPart is a run of text.
	TextPart PartKind = iota
	// LinkPart is a hyperlink. Its label wraps as a single unit.
	LinkPart
	// FontPart changes the font of the parts after it.
	FontPart
	// LineBreakPart forces a line break.
	LineBreakPart
)

// Part is an element of a text paragraph. Which fields apply depends
// on Kind.
type Part struct {
	Kind PartKind
	// Text is the content of text and link parts.
	Text string
	// Color of text and link parts. The zero value means the
	// renderer's default color.
	Color color.NRGBA
	// URL is the target of a link part.
	URL string
	// HoverColor and HoverFont style a link part under the pointer.
	HoverColor color.NRGBA
	HoverFont  *font.Font
	// Font is the font selected by a font part. Nil selects the
	// default font.
	Font *font.Font
}

// Split returns the tokens p contributes to line breaking. cur is the
// font in effect; font parts replace it, with the zero Font standing
// for the default font. Line breaks contribute no tokens; the line
// breaker handles them.
func (p Part) Split(cur *font.Font) []string {
	switch p.Kind {
	case TextPart:
		return splitWords(p.Text)
	case LinkPart:
		label := strings.TrimSpace(strings.Join(splitWords(p.Text), ""))
		if label == "" {
			return nil
		}
		return []string{label}
	case FontPart:
		if p.Font != nil {
			*cur = *p.Font
		} else {
			*cur = font.Font{}
		}
		return nil
	case LineBreakPart:
		return nil
	default:
		panic("unreachable")
	}
}

// splitWords divides s into words, spaces and newlines.
//
// A run of spaces becomes a single " ". "\n", "\r\n" and a lone "\r"
// each become "\n". A word followed by exactly one space keeps that
// space ("word "); a word followed by more spaces or by a newline
// does not.
func splitWords(s string) []string {
	var words []string
	for i := 0; i < len(s); {
		j := strings.IndexAny(s[i:], " \r\n")
		switch {
		case j < 0:
			words = append(words, s[i:])
			i = len(s)
		case j == 0:
			switch s[i] {
			case ' ':
				words = append(words, " ")
				for i < len(s) && s[i] == ' ' {
					i++
				}
			case '\r':
				words = append(words, "\n")
				i++
				if i < len(s) && s[i] == '\n' {
					i++
				}
			default:
				words = append(words, "\n")
				i++
			}
		default:
			end := i + j
			if s[end] == ' ' && (end+1 == len(s) || s[end+1] != ' ') {
				end++
			}
			words = append(words, s[i:end])
			i = end
		}
	}
	return words
}

func isSpace(word string) bool {
	return strings.TrimLeft(word, " ") == ""
}

func (k PartKind) String() string {
	switch k {
	case TextPart:
		return "TextPart"
	case LinkPart:
		return "LinkPart"
	case FontPart:
		return "FontPart"
	case LineBreakPart:
		return "LineBreakPart"
	default:
		panic("unreachable")
	}
}
