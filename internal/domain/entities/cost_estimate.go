package entities

// InspectionItem is a single finding taken from the inspection report.
type InspectionItem struct {
	SectionNumber string `json:"section_number"`
	Description   string `json:"description"`
}

// RepairCategory groups inspection findings that are fixed by the same trade.
//
// Monetary representation:
//   - HandymanCost and ContractorCost are whole currency units (dollars), never negative.
//   - ContractorCost is expected to be >= HandymanCost but that is not enforced here.
type RepairCategory struct {
	CategoryName     string           `json:"category_name"`
	InspectionItems  []InspectionItem `json:"inspection_items"`
	HandymanCost     float64          `json:"handyman_cost"`
	ContractorCost   float64          `json:"contractor_cost"`
	RecommendedTrade string           `json:"recommended_trade"`
}

// CostEstimate is the structured output of the estimate analyzer.
//
// Category order is the analyzer's order and is never re-sorted.
// An empty category list is valid: totals are zero.
type CostEstimate struct {
	RepairCategories  []RepairCategory `json:"repair_categories"`
	TermitesMentioned bool             `json:"termites_mentioned"`
	PestsMentioned    bool             `json:"pests_mentioned"`
	RotMentioned      bool             `json:"rot_mentioned"`
}

func (e CostEstimate) HandymanTotal() float64 {
	total := 0.0
	for _, c := range e.RepairCategories {
		total += c.HandymanCost
	}
	return total
}

func (e CostEstimate) ContractorTotal() float64 {
	total := 0.0
	for _, c := range e.RepairCategories {
		total += c.ContractorCost
	}
	return total
}

// IsPestLead reports whether the estimate qualifies as a pest/termite lead.
func (e CostEstimate) IsPestLead() bool {
	return e.TermitesMentioned || e.PestsMentioned
}
