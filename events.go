package clientprint

const (
	eventUnbalancedQuotes = "unbalanced_quotes"
	eventSegmentMerge     = "segment_merge"
)
