package kpi

import "liyu1981.xyz/kpi-alerts-service/pkg/models"

// ParseOperator normalizes an operator string. Unknown values map to
// less_than; the second return reports whether the input was recognized,
// so callers can log the fallback.
func ParseOperator(s string) (models.ThresholdOperator, bool) {
	op := models.ThresholdOperator(s)
	switch op {
	case models.OperatorLessThan,
		models.OperatorLessThanOrEqual,
		models.OperatorGreaterThan,
		models.OperatorGreaterThanOrEqual,
		models.OperatorEqual:
		return op, true
	}
	return models.OperatorLessThan, false
}

// CheckThreshold reports whether currentValue meets the threshold
// condition. equal compares with == and has no tolerance, which is a
// sharp edge for floating-point KPI values.
func CheckThreshold(currentValue float64, thresholdValue float64, op models.ThresholdOperator) bool {
	switch op {
	case models.OperatorLessThan:
		return currentValue < thresholdValue
	case models.OperatorLessThanOrEqual:
		return currentValue <= thresholdValue
	case models.OperatorGreaterThan:
		return currentValue > thresholdValue
	case models.OperatorGreaterThanOrEqual:
		return currentValue >= thresholdValue
	case models.OperatorEqual:
		return currentValue == thresholdValue
	}
	return false
}
