package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liyu1981.xyz/kpi-alerts-service/pkg/models"
	_ "liyu1981.xyz/kpi-alerts-service/pkg/testing"
)

func TestCheckThreshold(t *testing.T) {
	cases := []struct {
		name      string
		current   float64
		threshold float64
		op        models.ThresholdOperator
		want      bool
	}{
		{"less_than below", 14.9, 15.0, models.OperatorLessThan, true},
		{"less_than at boundary", 15.0, 15.0, models.OperatorLessThan, false},
		{"less_than above", 15.1, 15.0, models.OperatorLessThan, false},

		{"less_than_or_equal below", 14.9, 15.0, models.OperatorLessThanOrEqual, true},
		{"less_than_or_equal at boundary", 15.0, 15.0, models.OperatorLessThanOrEqual, true},
		{"less_than_or_equal above", 15.1, 15.0, models.OperatorLessThanOrEqual, false},

		{"greater_than above", 15.1, 15.0, models.OperatorGreaterThan, true},
		{"greater_than at boundary", 15.0, 15.0, models.OperatorGreaterThan, false},
		{"greater_than below", 14.9, 15.0, models.OperatorGreaterThan, false},

		{"greater_than_or_equal above", 15.1, 15.0, models.OperatorGreaterThanOrEqual, true},
		{"greater_than_or_equal at boundary", 15.0, 15.0, models.OperatorGreaterThanOrEqual, true},
		{"greater_than_or_equal below", 14.9, 15.0, models.OperatorGreaterThanOrEqual, false},

		{"equal exact", 15.0, 15.0, models.OperatorEqual, true},
		{"equal off", 15.0000001, 15.0, models.OperatorEqual, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckThreshold(tc.current, tc.threshold, tc.op))
		})
	}
}

func TestCheckThreshold_UnknownOperatorNeverMatches(t *testing.T) {
	assert.False(t, CheckThreshold(1.0, 2.0, models.ThresholdOperator("bogus_operator")))
}

func TestParseOperator(t *testing.T) {
	for _, op := range []models.ThresholdOperator{
		models.OperatorLessThan,
		models.OperatorLessThanOrEqual,
		models.OperatorGreaterThan,
		models.OperatorGreaterThanOrEqual,
		models.OperatorEqual,
	} {
		parsed, known := ParseOperator(string(op))
		assert.True(t, known)
		assert.Equal(t, op, parsed)
	}
}

func TestParseOperator_FallbackToLessThan(t *testing.T) {
	parsed, known := ParseOperator("bogus_operator")
	assert.False(t, known)
	assert.Equal(t, models.OperatorLessThan, parsed)

	// fallback operator behaves exactly as less_than
	assert.True(t, CheckThreshold(12.0, 15.0, parsed))
	assert.False(t, CheckThreshold(15.0, 15.0, parsed))
}
