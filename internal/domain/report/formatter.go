// Package report renders a CostEstimate as the plaintext report sent to customers.
package report

import (
	"math"
	"strconv"
	"strings"
	"time"

	"inspection_estimator/internal/domain/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultPreparedBy = "Inspection Cost Estimator"

	// CategorySeparator is written between two category blocks, never after the last one.
	CategorySeparator = "----------------------------------------"

	rule       = "========================================"
	dateLayout = "January 2, 2006"

	uncategorized    = "Uncategorized"
	tradeUnspecified = "Not specified"
	noItems          = "  (none listed)"
	noCategories     = "No repair items were identified in this inspection report."
)

// Formatter builds the customer report.
//
// Format is a pure function of its arguments: the same identity, estimate and date
// always produce byte-identical output.
type Formatter struct {
	preparedBy string
}

func NewFormatter(preparedBy string) *Formatter {
	preparedBy = strings.TrimSpace(preparedBy)
	if preparedBy == "" {
		preparedBy = DefaultPreparedBy
	}
	return &Formatter{preparedBy: preparedBy}
}

func (f *Formatter) Format(identity entities.Identity, estimate entities.CostEstimate, now time.Time) string {
	p := message.NewPrinter(language.AmericanEnglish)

	var b strings.Builder
	writeBanner(&b, "HOME INSPECTION COST ESTIMATE")
	b.WriteString("\n")
	b.WriteString("Customer: " + identity.FullName() + "\n")
	b.WriteString("Property: " + strings.TrimSpace(identity.PropertyAddress) + "\n")
	b.WriteString("Date: " + now.Format(dateLayout) + "\n")
	b.WriteString("Prepared by: " + f.preparedBy + "\n")
	b.WriteString("\n")

	writeBanner(&b, "REPAIR BREAKDOWN")
	b.WriteString("\n")
	if len(estimate.RepairCategories) == 0 {
		b.WriteString(noCategories + "\n\n")
	}
	for i, c := range estimate.RepairCategories {
		if i > 0 {
			b.WriteString(CategorySeparator + "\n\n")
		}
		writeCategory(&b, p, c)
	}

	writeBanner(&b, "ESTIMATED TOTALS")
	b.WriteString("\n")
	b.WriteString("Handyman Total: " + formatMoney(p, estimate.HandymanTotal()) + "\n")
	b.WriteString("Contractor Total: " + formatMoney(p, estimate.ContractorTotal()) + "\n")
	b.WriteString("\n")
	b.WriteString("© " + strconv.Itoa(now.Year()) + " " + f.preparedBy + ". All rights reserved.\n")
	return b.String()
}

func writeBanner(b *strings.Builder, title string) {
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")
}

func writeCategory(b *strings.Builder, p *message.Printer, c entities.RepairCategory) {
	name := strings.TrimSpace(c.CategoryName)
	if name == "" {
		name = uncategorized
	}
	b.WriteString(name + "\n")
	b.WriteString("Estimated Cost: " + formatMoney(p, c.HandymanCost) + " - " + formatMoney(p, c.ContractorCost) + "\n")
	b.WriteString("Inspection Items:\n")
	if len(c.InspectionItems) == 0 {
		b.WriteString(noItems + "\n")
	}
	for i, item := range c.InspectionItems {
		b.WriteString("  " + strconv.Itoa(i+1) + ". " + formatItem(item) + "\n")
	}
	trade := strings.TrimSpace(c.RecommendedTrade)
	if trade == "" {
		trade = tradeUnspecified
	}
	b.WriteString("Recommended Trade: " + trade + "\n")
	b.WriteString("\n")
}

func formatItem(item entities.InspectionItem) string {
	section := strings.TrimSpace(item.SectionNumber)
	desc := strings.TrimSpace(item.Description)
	switch {
	case section == "":
		return desc
	case desc == "":
		return "Section " + section
	default:
		return "Section " + section + " – " + desc
	}
}

// formatMoney rounds to cents, then renders whole amounts without decimals ($1,200)
// and fractional ones with two ($1,200.50).
func formatMoney(p *message.Printer, v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	v = math.Round(v*100) / 100
	if v == math.Trunc(v) {
		return sign + "$" + p.Sprintf("%.0f", v)
	}
	return sign + "$" + p.Sprintf("%.2f", v)
}
