package openai

import (
	"fmt"
	"strings"

	"github.com/soniclabs/callscribe/ai"
)

const insightsResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "summary": {
      "type": "string",
      "maxLength": %d
    },
    "tags": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 1,
      "maxItems": %d
    },
    "sentiment": {
      "type": "object",
      "properties": {
        "positive": {"type": "integer", "minimum": 0, "maximum": 100},
        "negative": {"type": "integer", "minimum": 0, "maximum": 100},
        "neutral": {"type": "integer", "minimum": 0, "maximum": 100}
      },
      "required": ["positive", "negative", "neutral"],
      "additionalProperties": false
    },
    "satisfaction_score": {
      "type": "integer",
      "minimum": 1,
      "maximum": 5
    },
    "key_points": {
      "type": "array",
      "items": {"type": "string"}
    },
    "caller_intent": {
      "type": "string"
    },
    "recommended_action": {
      "type": "string"
    },
    "confidence": {
      "type": "number",
      "minimum": 0.0,
      "maximum": 1.0
    }
  },
  "required": ["summary", "tags", "sentiment", "satisfaction_score", "key_points", "caller_intent", "recommended_action", "confidence"],
  "additionalProperties": false
}`

const analysisPromptTemplate = `You are an AI call analyst that analyzes phone call transcriptions.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- summary is a brief summary of the call content, max %d characters.
- IMPORTANT: Use ONLY these exact tags: %s. Assign between one and three tags classifying the call intent.
- Sentiment percentages MUST sum to 100.
- satisfaction_score is the customer satisfaction score and MUST be between 1-5 (integer only).
- key_points lists key points or action items from the call.
- caller_intent is the primary intent of the caller.
- recommended_action is the recommended next action for this call.
- confidence is a score from 0.0 to 1.0 for this analysis. If you can't confidently determine a field, set confidence below 0.7. If the transcription is unclear or incomplete, return confidence below 0.5.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Hi, I'm calling about the invoice you sent. It charges us twice for March. I need this fixed before Friday or I'm escalating."
Output:
{
  "summary": "Caller reports a duplicate March charge on their invoice and demands a correction before Friday, threatening escalation.",
  "tags": ["complaint", "needs_follow_up"],
  "sentiment": {"positive": 5, "negative": 70, "neutral": 25},
  "satisfaction_score": 2,
  "key_points": ["Invoice charges twice for March", "Correction needed before Friday", "Caller may escalate"],
  "caller_intent": "Get a duplicate invoice charge corrected",
  "recommended_action": "Issue a corrected invoice and confirm with the caller before Friday",
  "confidence": 0.9
}`

// buildSystemPrompt creates the system prompt with the response schema
// and tag vocabulary embedded.
func buildSystemPrompt() string {
	schema := fmt.Sprintf(insightsResponseSchema, ai.MaxSummaryLength, ai.MaxTags)
	return fmt.Sprintf(analysisPromptTemplate,
		schema,
		ai.MaxSummaryLength,
		strings.Join(ai.CallTags, ", "))
}
