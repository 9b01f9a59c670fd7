package blogservice

import (
	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
)

const (
	MaxSampleCount = 50
	MaxPickLabels  = 10
	maxTermLength  = 100
)

func validateCategory(v *common.Validator, c content.Category) {
	if c == "" {
		return
	}
	v.Check(common.PermittedValue(c, content.Categories...), "category", "must be one of science, running or music")
}

func validateTerm(v *common.Validator, term string) {
	v.Check(len(term) <= maxTermLength, "q", "must not be more than 100 bytes long")
}

func validateCount(v *common.Validator, count int) {
	v.Check(v.CheckRange(count, 1, MaxSampleCount), "count", "must be between 1 and 50")
}

func validateLabels(v *common.Validator, labels []string) {
	v.Check(len(labels) > 0, "label", "must be provided")
	v.Check(len(labels) <= MaxPickLabels, "label", "must not contain more than 10 values")
	for _, l := range labels {
		v.Check(l != "", "label", "must not contain empty values")
	}
}
