package app

import "fmt"

const structuredPromptTemplate = `
You are a medical report analysis assistant.
Analyze the following text from a lab report and respond ONLY in pure JSON with this structure:

{
  "summary": "Short plain-English summary of the report",
  "abnormalValues": ["List of all values that seem high or low"],
  "suggestions": ["Lifestyle, diet, or exercise recommendations"],
  "questionsForDoctor": ["Questions the user should ask their doctor"]
}

Do not include markdown or explanations — return raw JSON only.
Here is the report text:
%s
`

const translationPromptTemplate = "Translate the following English text into Roman Urdu, keeping it simple and easy to understand:\n\n%s"

func buildStructuredPrompt(reportText string) string {
	return fmt.Sprintf(structuredPromptTemplate, reportText)
}

func buildTranslationPrompt(englishSummary string) string {
	return fmt.Sprintf(translationPromptTemplate, englishSummary)
}
