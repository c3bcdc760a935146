package analysis

import "fcpulse/internal/errors"

// Ratio computes numerator/denominator for a named derived metric.
// A zero denominator fails with a division-by-zero error rather than
// defaulting: a silent zero would misstate the business conclusion the
// metric supports.
func Ratio(metric string, numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, errors.NewDivisionByZeroError(metric)
	}
	return numerator / denominator, nil
}

// Share computes part/total as a percentage for a named metric.
// Shares computed over a partition of the same total sum to 100.
func Share(metric string, part, total float64) (float64, error) {
	ratio, err := Ratio(metric, part, total)
	if err != nil {
		return 0, err
	}
	return ratio * 100, nil
}

// MeanRatio computes the ratio between the means of two groups, the shape
// behind the engagement multiplier. The denominator group must exist and
// have a non-zero mean.
func MeanRatio(metric string, numerator, denominator Group) (float64, error) {
	if !denominator.Valid {
		return 0, errors.NewDivisionByZeroError(metric)
	}
	return Ratio(metric, numerator.Mean, denominator.Mean)
}
