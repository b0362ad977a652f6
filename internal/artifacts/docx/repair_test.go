package docx

import (
	"strings"
	"testing"
)

func parseBody(t *testing.T, bodyXML string) *xmlNode {
	t.Helper()
	doc := `<w:document xmlns:w="` + wmlNamespace + `"><w:body>` + bodyXML + `</w:body></w:document>`
	root, _, err := parseXMLDocument(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

func paragraphTexts(root *xmlNode) []string {
	var out []string
	walkXML(root, func(n *xmlNode) bool {
		if isElement(n, "p") {
			out = append(out, paragraphText(n))
		}
		return true
	})
	return out
}

func para(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

func TestRepairRemovesSeparatorOnlyParagraphs(t *testing.T) {
	cases := []string{" — ", "— | —", "••", "- – —", "   ", "| · |"}
	for _, text := range cases {
		root := parseBody(t, para(text))
		Repair(root)
		if got := paragraphTexts(root); len(got) != 0 {
			t.Fatalf("expected %q removed, still have %v", text, got)
		}
	}
}

func TestRepairKeepsParagraphsWithContent(t *testing.T) {
	cases := []string{"Skills — Python", "plain text", "— trailing words", "A | B"}
	for _, text := range cases {
		root := parseBody(t, para(text))
		Repair(root)
		if got := paragraphTexts(root); len(got) != 1 {
			t.Fatalf("expected %q kept, got %v", text, got)
		}
	}
}

func TestRepairKeepsRunlessSpacingParagraphs(t *testing.T) {
	root := parseBody(t, `<w:p/>`+para("content"))
	Repair(root)
	if got := paragraphTexts(root); len(got) != 2 {
		t.Fatalf("expected spacing paragraph kept, got %v", got)
	}
}

func TestRepairRemovalIsWholeParagraph(t *testing.T) {
	// One separator-only paragraph between two real ones: only the middle
	// paragraph goes, neighbors are untouched.
	root := parseBody(t, para("Experience")+para(" — ")+para("Acme Corp"))
	Repair(root)
	got := paragraphTexts(root)
	if len(got) != 2 || got[0] != "Experience" || got[1] != "Acme Corp" {
		t.Fatalf("unexpected paragraphs after repair: %v", got)
	}
}

func TestRepairTokenResolvedToEmpty(t *testing.T) {
	// A line whose every slot resolved empty degenerates to separators and
	// is removed; a line with one surviving value stays.
	root := parseBody(t, para("{{EXP4_TITLE}} — {{EXP4_COMPANY}}")+para("{{NAME}} — {{TITLE}}"))
	replaceTokensInNode(root, map[string]string{
		"{{EXP4_TITLE}}":   "",
		"{{EXP4_COMPANY}}": "",
		"{{NAME}}":         "Jordan Lee",
		"{{TITLE}}":        "",
	})
	Repair(root)
	got := paragraphTexts(root)
	if len(got) != 1 {
		t.Fatalf("expected one paragraph after repair, got %v", got)
	}
	if !strings.Contains(got[0], "Jordan Lee") {
		t.Fatalf("wrong paragraph survived: %q", got[0])
	}
}
