package ai

// CallTags defines the closed vocabulary for call intent classification.
// Analysts must emit tags from this list only; anything else is rejected
// as a malformed response.
var CallTags = []string{
	"needs_follow_up",
	"wrong_number",
	"not_interested",
	"requesting_info",
	"complaint",
	"support_issue",
	"scheduling",
	"pricing_inquiry",
	"ready_to_purchase",
	"callback_requested",
	"decision_maker_absent",
	"positive_feedback",
	"escalation_needed",
	"voicemail",
}

// MaxTags is the maximum number of tags an analyst may assign to a call.
const MaxTags = 3

// MaxSummaryLength bounds the call summary in characters.
const MaxSummaryLength = 300

// IsValidTag reports whether tag belongs to the CallTags vocabulary.
func IsValidTag(tag string) bool {
	for _, t := range CallTags {
		if t == tag {
			return true
		}
	}
	return false
}
