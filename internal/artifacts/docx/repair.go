package docx

import (
	"strings"
	"unicode"
)

// Separator glyphs used by templates to divide slot values within a line.
// When every slot on the line resolves empty, the line degenerates to just
// these glyphs and must be deleted whole.
var separatorRunes = map[rune]struct{}{
	'-': {}, '–': {}, '—': {}, '―': {},
	'•': {}, '·': {}, '‣': {}, '∙': {},
	'|': {},
}

// Repair removes degenerate paragraphs left behind by empty slots: any
// paragraph that still has text runs but whose visible text is only
// separator glyphs and whitespace. Paragraphs without runs (intentional
// spacing) are kept. Partial lines like "Skills — Python" are untouched;
// removal is all or nothing per paragraph.
func Repair(root *xmlNode) {
	removeParagraphs(root, isSeparatorOnlyParagraph)
}

func isSeparatorOnlyParagraph(p *xmlNode) bool {
	if len(collectTextElements(p)) == 0 {
		return false
	}
	return stripSeparators(paragraphText(p)) == ""
}

func stripSeparators(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if _, ok := separatorRunes[r]; ok {
			return -1
		}
		return r
	}, text)
}
