package docx

import "fmt"

// Slot capacity of the fixed template layouts. Templates carry exactly these
// placeholders; content beyond capacity is truncated before mapping.
const (
	MaxSkillCategories   = 3
	MaxSkillsPerCategory = 6
	MaxExperiences       = 4
	MaxKeyPoints         = 5
)

// bulletBudgets holds the per-position bullet capacity, most recent
// experience first.
var bulletBudgets = [MaxExperiences]int{4, 3, 3, 2}

// BulletBudget returns the bullet capacity for the experience at position
// (zero-based, most recent first).
func BulletBudget(position int) int {
	if position < 0 || position >= MaxExperiences {
		return 0
	}
	return bulletBudgets[position]
}

// headerSlots are shared by both template kinds.
var headerSlots = []string{
	"NAME", "TITLE", "EMAIL", "PHONE", "LOCATION", "LINKS",
	"COMPANY", "JOB_TITLE", "DATE",
}

// ResumeSlots returns every slot name in the resume template layout.
func ResumeSlots() []string {
	out := append([]string{}, headerSlots...)
	out = append(out, "SUMMARY", "BODY")
	for c := 1; c <= MaxSkillCategories; c++ {
		out = append(out, fmt.Sprintf("CAT%d_NAME", c))
		for s := 1; s <= MaxSkillsPerCategory; s++ {
			out = append(out, fmt.Sprintf("CAT%d_SKILL%d", c, s))
		}
	}
	for p := 1; p <= MaxExperiences; p++ {
		out = append(out,
			fmt.Sprintf("EXP%d_TITLE", p),
			fmt.Sprintf("EXP%d_COMPANY", p),
			fmt.Sprintf("EXP%d_LOCATION", p),
			fmt.Sprintf("EXP%d_DATES", p),
		)
		for b := 1; b <= BulletBudget(p-1); b++ {
			out = append(out, fmt.Sprintf("EXP%d_BULLET%d", p, b))
		}
	}
	return out
}

// CoverLetterSlots returns every slot name in the cover letter template layout.
func CoverLetterSlots() []string {
	out := append([]string{}, headerSlots...)
	out = append(out, "BODY", "TONE")
	for p := 1; p <= MaxKeyPoints; p++ {
		out = append(out, fmt.Sprintf("POINT%d", p))
	}
	return out
}

// Token wraps a slot name in the template placeholder syntax.
func Token(slot string) string {
	return "{{" + slot + "}}"
}
