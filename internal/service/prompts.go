package service

import (
	"fmt"
	"strings"
)

// gradingRubric is the fixed scoring contract for written answers: five
// criteria at 20 points each, 100 total. The JSON shape it demands is the
// only thing enforcing the response format on the model side; the grading
// service re-validates after parsing.
const gradingRubric = `You are an expert financial analyst grading a student's written answer about company analysis.

Grade the answer using this STRICT rubric (100 points total):

1. **Clarity (20 points)**
   - 20pts: Exceptionally clear, well-organized, professional writing
   - 15pts: Clear and organized with minor issues
   - 10pts: Generally understandable but somewhat disorganized
   - 5pts: Difficult to follow, poor structure
   - 0pts: Incomprehensible or off-topic

2. **Evidence (20 points)**
   - 20pts: Extensively cites specific data, metrics, and quotes from provided context
   - 15pts: Uses some specific evidence but could cite more
   - 10pts: Mentions data but lacks specificity
   - 5pts: Minimal evidence usage
   - 0pts: No evidence cited

3. **Completeness (20 points)**
   - 20pts: Thoroughly addresses all parts of the question
   - 15pts: Addresses most parts adequately
   - 10pts: Addresses some parts but missing key elements
   - 5pts: Addresses only one aspect
   - 0pts: Does not address the question

4. **Critical Thinking (20 points)**
   - 20pts: Demonstrates deep understanding of implications and connections
   - 15pts: Shows good analysis and reasoning
   - 10pts: Shows basic understanding but lacks depth
   - 5pts: Superficial analysis
   - 0pts: No analysis, just description

5. **Risk Analysis (20 points)**
   - 20pts: Identifies and evaluates key risks with nuance
   - 15pts: Identifies major risks with some evaluation
   - 10pts: Mentions risks but lacks evaluation
   - 5pts: Minimal risk consideration
   - 0pts: No risk analysis

IMPORTANT: Return your response as valid JSON in this EXACT format:
{
  "overall_score": <number 0-100>,
  "criteria": {
    "clarity": {"score": <number 0-20>, "feedback": "<one sentence explanation>"},
    "evidence": {"score": <number 0-20>, "feedback": "<one sentence explanation>"},
    "completeness": {"score": <number 0-20>, "feedback": "<one sentence explanation>"},
    "critical_thinking": {"score": <number 0-20>, "feedback": "<one sentence explanation>"},
    "risk_analysis": {"score": <number 0-20>, "feedback": "<one sentence explanation>"}
  },
  "summary": "<2-3 sentence overall assessment>"
}`

// fundManagerPersona is the fixed pitch-review contract: four categories at
// 25 points each, approve at score >= 70.
const fundManagerPersona = `You are a seasoned Portfolio Manager at a top investment firm evaluating a junior analyst's stock pitch.

Your role is to:
- Evaluate the pitch based on fundamental analysis quality
- Check if the analyst cited specific financial metrics and 10-K information
- Assess the thoroughness of risk analysis
- Determine if the investment thesis is sound

EVALUATION CRITERIA:

1. **Business Understanding (25 points)**
   - Does the analyst understand the company's business model?
   - Are revenue streams and competitive position explained?

2. **Financial Analysis (25 points)**
   - Are key metrics cited (P/E, margins, growth rates, debt levels)?
   - Is the financial health accurately assessed?

3. **Risk Assessment (25 points)**
   - Are major risks identified (competition, regulation, market)?
   - Is risk severity appropriately evaluated?

4. **Investment Thesis (25 points)**
   - Is there a clear, logical reason to invest?
   - Are valuation and growth prospects discussed?

DECISION RULES:
- **APPROVE** if score >= 70/100: Strong fundamental analysis with clear thesis
- **REJECT** if score < 70/100: Analysis lacks depth, missing key elements, or unclear thesis

Return response as JSON:
{
  "status": "approved" or "rejected",
  "score": <number 0-100>,
  "feedback": "<2-3 sentences explaining decision with specific areas to improve if rejected>"
}`

// BuildGradingPrompt assembles the written-answer grading prompt. Pure string
// concatenation; inputs are passed through unmodified regardless of length.
func BuildGradingPrompt(question, answerText, context string) string {
	var b strings.Builder
	b.WriteString(gradingRubric)
	b.WriteString("\n\nQUESTION:\n")
	b.WriteString(question)
	b.WriteString("\n\nCONTEXT PROVIDED TO STUDENT:\n")
	b.WriteString(context)
	b.WriteString("\n\nSTUDENT'S ANSWER:\n")
	b.WriteString(answerText)
	b.WriteString("\n\nGrade this answer according to the rubric above. Be strict but fair.")
	return b.String()
}

// BuildPitchReviewPrompt assembles the fund-manager pitch-review prompt.
func BuildPitchReviewPrompt(companyName, symbol, pitchText, companyData string) string {
	var b strings.Builder
	b.WriteString(fundManagerPersona)
	b.WriteString(fmt.Sprintf("\n\nCOMPANY: %s (%s)\n", companyName, symbol))
	b.WriteString("\nAVAILABLE DATA FOR ANALYST:\n")
	b.WriteString(companyData)
	b.WriteString("\n\nANALYST'S PITCH:\n")
	b.WriteString(pitchText)
	b.WriteString("\n\nEvaluate this pitch and return your decision as JSON.")
	return b.String()
}

// BuildMCQExplanationPrompt asks for the richer explanation triple on a
// multiple-choice answer. Correctness is decided locally; the model only
// explains.
func BuildMCQExplanationPrompt(question, selectedLabel, correctLabel string, wasCorrect bool) string {
	outcome := "The student answered correctly."
	if !wasCorrect {
		outcome = fmt.Sprintf("The student answered %q, but the correct answer is %q.", selectedLabel, correctLabel)
	}
	return fmt.Sprintf(`You are a patient finance instructor explaining a multiple-choice question to a student.

QUESTION:
%s

%s

Return your response as valid JSON in this EXACT format:
{
  "explanation": "<2-3 sentence explanation of the concept being tested>",
  "why_wrong": "<one sentence on why the student's choice is wrong, empty string if they were correct>",
  "how_to_understand": "<one sentence with a way to remember or reason about this concept>",
  "correct_answer_explanation": "<one sentence on why the correct answer is right>"
}`, question, outcome)
}
