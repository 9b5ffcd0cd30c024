package content

import (
	"fmt"
	"strings"
)

const quizChallengeSystemPrompt = `You are an expert at creating educational content for school students. Your task is to generate a short, fun quiz challenge.`

func buildQuizChallengeMessage(topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	b.WriteString(`
Generate a quiz with:
1. A creative title.
2. Exactly 5 multiple-choice questions on the topic.
3. Exactly 4 answer options per question.
4. The index of the correct option (0 to 3).
5. A brief explanation for each correct answer.
6. An encouraging, educational tone suitable for students.`)
	return b.String()
}

const challengeDetailsSystemPrompt = `You are an expert in gamification and educational content design. Your task is to create the details for a fun classroom challenge.`

func buildChallengeDetailsMessage(topic string, difficulty Difficulty) string {
	min, max := difficulty.PointsRange()

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, `
Generate the following challenge details:
1. A creative, energetic, short title (5 words maximum).
2. A brief description (1-2 sentences) that motivates the student to take part.
3. A point value between %d and %d, matching the difficulty.
4. An encouraging, exciting tone.`, min, max)
	return b.String()
}

const contentSystemPrompt = `You are an AI assistant that helps teachers generate educational content. Create engaging, educationally sound material that matches the requested type, difficulty, and instructions.`

func buildContentMessage(req ContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course Name: %s\n", req.CourseName)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Content Type: %s\n", req.ContentType)
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty Level: %s\n", req.Difficulty)
	}
	if req.Length != "" {
		fmt.Fprintf(&b, "Length: %s\n", req.Length)
	}
	if req.AdditionalInstructions != "" {
		fmt.Fprintf(&b, "Additional Instructions: %s\n", req.AdditionalInstructions)
	}

	b.WriteString("\nGenerate the material with a title and the content itself, ready for immediate classroom use.")
	if req.ContentType == TypeQuiz {
		b.WriteString(" Include the quiz questions as structured multiple-choice items: 4 options each, the index of the correct option, and a short explanation per question.")
	}
	return b.String()
}

const moderationSystemPrompt = `You are a friendly, encouraging AI teaching assistant. You review images that students submit for classroom challenges and give detailed, constructive feedback.`

func buildModerationMessage(input ModerationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Challenge Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Challenge Description: %s\n", input.Description)
	b.WriteString(`
Review the attached image and decide whether it is a valid, relevant attempt at the challenge.

1. Check relevance and effort: is the image related to the topic and description, and does it look like a genuine attempt?
2. If it is a relevant, good-faith attempt, approve it: start with sincere praise for what is done well, then give 1-2 specific, practical suggestions for improvement. Be concrete, never just "could be better".
3. If it is irrelevant, blank, or very low quality, reject it: kindly explain why it cannot be approved and describe clearly what is expected for the next attempt.
4. Approve only genuine, relevant attempts; reject everything else.`)
	return b.String()
}
