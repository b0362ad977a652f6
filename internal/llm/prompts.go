package llm

import (
	_ "embed"
)

// Prompt templates shipped with the binary. Callers substitute the
// {{PLACEHOLDER}} tokens before sending.

//go:embed prompts/resume_gen.txt
var ResumeGenPrompt string

//go:embed prompts/cover_letter_gen.txt
var CoverLetterGenPrompt string

//go:embed prompts/interview_system.txt
var InterviewSystemPrompt string

//go:embed prompts/interview_assessment.txt
var InterviewAssessmentPrompt string
