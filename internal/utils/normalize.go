package utils

// CreateRankList creates a slice of 1-based ranks for count items that are
// already sorted.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
