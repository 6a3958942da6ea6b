package quiz

import (
	"fmt"
	"strings"
)

func buildQuizPrompt(content string, difficulty Difficulty, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert educational content creator. Create %d multiple-choice questions from the following content.\n\n", count)
	fmt.Fprintf(&b, "Content: %s\n\n", content)
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Difficulty level: %s\n", difficulty)
	b.WriteString("- Each question should have 4 options (A, B, C, D)\n")
	b.WriteString("- Only one correct answer per question\n")
	b.WriteString("- Include a brief explanation for each question\n")
	b.WriteString("- Questions should test understanding, not just memorization\n")
	b.WriteString("- Mix of question types: factual, conceptual, application-based\n\n")
	b.WriteString("Return the questions in this exact JSON format:\n")
	b.WriteString(`{
    "questions": [
        {
            "question": "Question text here?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of why this is correct"
        }
    ]
}
`)
	b.WriteString("\nReturn only valid JSON, no additional text.\n")
	return b.String()
}

func buildSummaryPrompt(content string) string {
	var b strings.Builder
	b.WriteString("Summarize the following content in 3-5 bullet points, focusing on the key concepts and main ideas:\n\n")
	b.WriteString(content)
	b.WriteString("\n\nReturn only the bullet points, no additional text.\n")
	return b.String()
}

func buildSocraticPrompt(question, userAnswer string, attempt int) string {
	var approach string
	switch {
	case attempt <= 1:
		approach = "Ask probing questions to help them think through the problem"
	case attempt == 2:
		approach = "Provide hints and ask more directed questions"
	default:
		approach = "Explain the concept more directly while still encouraging thinking"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a Socratic tutor helping a student learn. %s.\n\n", approach)
	fmt.Fprintf(&b, "Original question: %s\n", question)
	fmt.Fprintf(&b, "Student's answer: %s\n\n", userAnswer)
	b.WriteString("Respond in a way that:\n")
	if attempt < 3 {
		b.WriteString("- Never states the correct answer verbatim\n")
	}
	b.WriteString("- Doesn't give the answer directly\n")
	b.WriteString("- Asks questions that make them think\n")
	b.WriteString("- Provides hints when appropriate\n")
	b.WriteString("- Encourages deeper understanding\n")
	b.WriteString("- Keeps the response conversational and supportive\n\n")
	b.WriteString("Your response should be 2-4 sentences long.\n")
	return b.String()
}
