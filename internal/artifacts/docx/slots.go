package docx

import (
	"fmt"
	"strings"
)

// Header carries the contact and posting fields shared by both layouts.
type Header struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	Links    []string
	Company  string
	JobTitle string
	Date     string
}

// SkillCategory is one named group of skills.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Experience is one work-history entry with its accomplishment bullets.
type Experience struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
}

// MapResumeSlots maps generated resume content onto the fixed slot layout.
// The result is total: every slot in ResumeSlots has an entry, empty when
// there is nothing to fill it, so rendering always resolves every token.
// Content beyond slot capacity is dropped.
func MapResumeSlots(header Header, summary, body string, categories []SkillCategory, experiences []Experience) map[string]string {
	slots := emptySlots(ResumeSlots())
	fillHeader(slots, header)
	slots["SUMMARY"] = strings.TrimSpace(summary)
	slots["BODY"] = strings.TrimSpace(body)

	for c := 0; c < len(categories) && c < MaxSkillCategories; c++ {
		slots[fmt.Sprintf("CAT%d_NAME", c+1)] = strings.TrimSpace(categories[c].Name)
		for s := 0; s < len(categories[c].Skills) && s < MaxSkillsPerCategory; s++ {
			slots[fmt.Sprintf("CAT%d_SKILL%d", c+1, s+1)] = strings.TrimSpace(categories[c].Skills[s])
		}
	}

	for p := 0; p < len(experiences) && p < MaxExperiences; p++ {
		exp := experiences[p]
		slots[fmt.Sprintf("EXP%d_TITLE", p+1)] = strings.TrimSpace(exp.Title)
		slots[fmt.Sprintf("EXP%d_COMPANY", p+1)] = strings.TrimSpace(exp.Company)
		slots[fmt.Sprintf("EXP%d_LOCATION", p+1)] = strings.TrimSpace(exp.Location)
		slots[fmt.Sprintf("EXP%d_DATES", p+1)] = strings.TrimSpace(exp.Dates)
		for b := 0; b < len(exp.Bullets) && b < BulletBudget(p); b++ {
			slots[fmt.Sprintf("EXP%d_BULLET%d", p+1, b+1)] = strings.TrimSpace(exp.Bullets[b])
		}
	}

	return slots
}

// MapCoverLetterSlots maps generated cover letter content onto the fixed
// slot layout. The result is total over CoverLetterSlots.
func MapCoverLetterSlots(header Header, body, tone string, keyPoints []string) map[string]string {
	slots := emptySlots(CoverLetterSlots())
	fillHeader(slots, header)
	slots["BODY"] = strings.TrimSpace(body)
	slots["TONE"] = strings.TrimSpace(tone)
	for p := 0; p < len(keyPoints) && p < MaxKeyPoints; p++ {
		slots[fmt.Sprintf("POINT%d", p+1)] = strings.TrimSpace(keyPoints[p])
	}
	return slots
}

func emptySlots(names []string) map[string]string {
	slots := make(map[string]string, len(names))
	for _, name := range names {
		slots[name] = ""
	}
	return slots
}

func fillHeader(slots map[string]string, header Header) {
	slots["NAME"] = strings.TrimSpace(header.Name)
	slots["TITLE"] = strings.TrimSpace(header.Title)
	slots["EMAIL"] = strings.TrimSpace(header.Email)
	slots["PHONE"] = strings.TrimSpace(header.Phone)
	slots["LOCATION"] = strings.TrimSpace(header.Location)
	slots["LINKS"] = strings.Join(header.Links, " | ")
	slots["COMPANY"] = strings.TrimSpace(header.Company)
	slots["JOB_TITLE"] = strings.TrimSpace(header.JobTitle)
	slots["DATE"] = strings.TrimSpace(header.Date)
}
