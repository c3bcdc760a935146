package analysis

import "sort"

// Group holds summary statistics for one partition of a dataset.
type Group struct {
	Key   string
	Count int     // records in the group
	Sum   float64 // sum over valid numeric values
	Mean  float64 // mean over valid numeric values; zero when Valid is false
	Valid bool    // false when the group had no valid numeric values
}

// GroupBy partitions records by key and computes count, sum and mean of the
// extracted numeric field. The extractor's second return reports whether the
// record carries a usable value; records without one contribute to Count but
// neither to Sum nor Mean, so sparse fields never skew averages. Groups are
// returned sorted by key for deterministic report output.
func GroupBy[T any](records []T, key func(T) string, value func(T) (float64, bool)) []Group {
	type accum struct {
		count int
		valid int
		sum   float64
	}

	buckets := make(map[string]*accum)
	for _, record := range records {
		k := key(record)
		bucket, exists := buckets[k]
		if !exists {
			bucket = &accum{}
			buckets[k] = bucket
		}
		bucket.count++
		if v, ok := value(record); ok {
			bucket.valid++
			bucket.sum += v
		}
	}

	groups := make([]Group, 0, len(buckets))
	for k, bucket := range buckets {
		g := Group{Key: k, Count: bucket.count, Sum: bucket.sum}
		if bucket.valid > 0 {
			g.Mean = bucket.sum / float64(bucket.valid)
			g.Valid = true
		}
		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	return groups
}

// SortBySumDesc returns a copy of groups ordered by descending sum.
// Ties break on ascending key so rankings are reproducible.
func SortBySumDesc(groups []Group) []Group {
	sorted := make([]Group, len(groups))
	copy(sorted, groups)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Sum != sorted[j].Sum {
			return sorted[i].Sum > sorted[j].Sum
		}
		return sorted[i].Key < sorted[j].Key
	})

	return sorted
}

// TotalSum adds up the sums of all groups. Because invalid values are
// excluded at aggregation time, the grand total over a partition equals the
// total computed over the whole record set.
func TotalSum(groups []Group) float64 {
	var total float64
	for _, g := range groups {
		total += g.Sum
	}
	return total
}

// FindGroup returns the group with the given key.
func FindGroup(groups []Group, key string) (Group, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}
