package format

import (
	"fmt"

	"invoice-dashboard-backend/internal/models"
)

const yAxisStep = 1000

// GenerateYAxis builds the revenue chart labels ("$12K" ... "$0K") in steps of
// 1000, starting from the highest month rounded up. It also returns that top value.
func GenerateYAxis(revenue []models.Revenue) ([]string, int64) {
	var highest int64
	for _, r := range revenue {
		if r.Revenue > highest {
			highest = r.Revenue
		}
	}

	topLabel := ((highest + yAxisStep - 1) / yAxisStep) * yAxisStep

	labels := make([]string, 0, topLabel/yAxisStep+1)
	for i := topLabel; i >= 0; i -= yAxisStep {
		labels = append(labels, fmt.Sprintf("$%dK", i/yAxisStep))
	}
	return labels, topLabel
}
