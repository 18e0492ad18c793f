package llm

import (
	"encoding/json"
	"strings"
)

func buildSystemPrompt() string {
	parts := []string{
		"You are a home inspection cost estimator. You read the text of a home inspection report and group every defect that needs repair into repair categories.",
		"Return ONLY a JSON object that matches the JSON Schema provided.",
		"For each category give a short category_name, the inspection_items it covers (section_number exactly as printed in the report and a one-line description), a handyman_cost and a contractor_cost in US dollars, and the recommended_trade.",
		"handyman_cost is the typical price for a general handyman; contractor_cost is the typical price for a licensed contractor of the recommended trade.",
		"Costs are plain non-negative numbers without currency symbols or ranges.",
		"Set termites_mentioned, pests_mentioned and rot_mentioned to true when the report mentions termites, other pests or wood rot respectively.",
		"If the report lists no repairs, return an empty repair_categories array.",
		"Never output null. If a field is not known, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Inspection report text:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn ONLY JSON that matches the provided schema.")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
