package syncstore

import "github.com/classboard/classboard-api/pkg/client"

// ClassAggregates are the roster figures the dashboard header shows.
type ClassAggregates struct {
	TotalStudents int
	AverageScore  float64
}

// DeriveClassAggregates computes roster totals across classes. The average
// is the mean of the per-class AvgScore figures, not a per-student mean, so
// a class counts the same regardless of roster size or whether its student
// list was populated. An empty collection yields 0, never NaN.
func DeriveClassAggregates(classes []client.ClassItem) ClassAggregates {
	var agg ClassAggregates
	var sum float64
	for _, class := range classes {
		agg.TotalStudents += len(class.Students)
		sum += class.AvgScore
	}
	if len(classes) > 0 {
		agg.AverageScore = sum / float64(len(classes))
	}
	return agg
}
