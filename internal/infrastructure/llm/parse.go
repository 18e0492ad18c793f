package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/usecase/interfaces"
)

type wireItem struct {
	SectionNumber any    `json:"section_number"`
	Description   string `json:"description"`
}

type wireCategory struct {
	CategoryName     string     `json:"category_name"`
	InspectionItems  []wireItem `json:"inspection_items"`
	HandymanCost     float64    `json:"handyman_cost"`
	ContractorCost   float64    `json:"contractor_cost"`
	RecommendedTrade string     `json:"recommended_trade"`
}

type wireEstimate struct {
	RepairCategories  []wireCategory `json:"repair_categories"`
	TermitesMentioned bool           `json:"termites_mentioned"`
	PestsMentioned    bool           `json:"pests_mentioned"`
	RotMentioned      bool           `json:"rot_mentioned"`
}

// ParseEstimate validates content against the estimate schema and decodes it.
// Any failure wraps interfaces.ErrMalformedResponse.
func ParseEstimate(content []byte) (entities.CostEstimate, error) {
	if !json.Valid(content) {
		return entities.CostEstimate{}, fmt.Errorf("%w: content is not valid json", interfaces.ErrMalformedResponse)
	}
	if err := ValidateEstimateJSON(content); err != nil {
		return entities.CostEstimate{}, fmt.Errorf("%w: %w", interfaces.ErrMalformedResponse, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var w wireEstimate
	if err := dec.Decode(&w); err != nil {
		return entities.CostEstimate{}, fmt.Errorf("%w: %w", interfaces.ErrMalformedResponse, err)
	}

	out := entities.CostEstimate{
		RepairCategories:  make([]entities.RepairCategory, 0, len(w.RepairCategories)),
		TermitesMentioned: w.TermitesMentioned,
		PestsMentioned:    w.PestsMentioned,
		RotMentioned:      w.RotMentioned,
	}
	for _, c := range w.RepairCategories {
		items := make([]entities.InspectionItem, 0, len(c.InspectionItems))
		for _, it := range c.InspectionItems {
			items = append(items, entities.InspectionItem{
				SectionNumber: sectionString(it.SectionNumber),
				Description:   it.Description,
			})
		}
		out.RepairCategories = append(out.RepairCategories, entities.RepairCategory{
			CategoryName:     c.CategoryName,
			InspectionItems:  items,
			HandymanCost:     c.HandymanCost,
			ContractorCost:   c.ContractorCost,
			RecommendedTrade: c.RecommendedTrade,
		})
	}
	return out, nil
}

// sectionString keeps numeric section ids as printed ("3.10" stays "3.10").
func sectionString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}
