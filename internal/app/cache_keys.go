package app

import "fmt"

// Cache keys shared by the query service (reads) and the command service
// (invalidation). List caches exist only at the canonical limits below, so
// the write path can evict every key a read may have populated.

var commonLimits = []int{50, 100, 200}

// canonicalLimit rounds a requested limit up to the nearest cached variant.
// Reads fetch and cache the canonical size, then clip to what was asked.
func canonicalLimit(limit int) int {
	for _, l := range commonLimits {
		if limit <= l {
			return l
		}
	}
	return commonLimits[len(commonLimits)-1]
}

func listingKey(id string) string { return fmt.Sprintf("listing:%s", id) }

func listingsKey(limit int) string { return fmt.Sprintf("listings:%d", limit) }

func reviewsKey(listingID string, limit int) string {
	return fmt.Sprintf("reviews:%s:%d", listingID, limit)
}
