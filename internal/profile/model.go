package profile

import (
	"strings"
	"time"
)

// Profile is the single user's career profile. There is exactly one; PUT
// replaces it wholesale.
type Profile struct {
	Name       string       `json:"name"`
	Title      string       `json:"title"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	Links      []string     `json:"links"`
	Summary    string       `json:"summary"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Experience is one role in the profile's work history.
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Dates      string   `json:"dates"`
	Highlights []string `json:"highlights"`
}

// Education is one entry in the profile's education history.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Dates       string `json:"dates"`
}

// PromptText renders the profile as plain text for model prompts.
func (p Profile) PromptText() string {
	var b strings.Builder
	writeLine := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			b.WriteString(label)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString("\n")
		}
	}
	writeLine("Name", p.Name)
	writeLine("Title", p.Title)
	writeLine("Location", p.Location)
	writeLine("Summary", p.Summary)
	if len(p.Skills) > 0 {
		writeLine("Skills", strings.Join(p.Skills, ", "))
	}
	for _, exp := range p.Experience {
		b.WriteString("\n")
		b.WriteString(exp.Title)
		if exp.Company != "" {
			b.WriteString(" at " + exp.Company)
		}
		if exp.Dates != "" {
			b.WriteString(" (" + exp.Dates + ")")
		}
		b.WriteString("\n")
		for _, h := range exp.Highlights {
			b.WriteString("- " + h + "\n")
		}
	}
	for _, edu := range p.Education {
		b.WriteString("\n")
		b.WriteString(edu.Degree)
		if edu.Institution != "" {
			b.WriteString(", " + edu.Institution)
		}
		if edu.Dates != "" {
			b.WriteString(" (" + edu.Dates + ")")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
