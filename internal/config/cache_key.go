package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PopularClassesKey returns the cache key for the popular classes listing
func (r *CacheKeyStruct) PopularClassesKey() string {
	return "classes:popular"
}

// PopularInstructorsKey returns the cache key for the popular instructors listing
func (r *CacheKeyStruct) PopularInstructorsKey() string {
	return "instructors:popular"
}

// ApprovedClassesKey returns the cache key for the approved classes listing
func (r *CacheKeyStruct) ApprovedClassesKey() string {
	return "classes:approved"
}

// RateLimitKey returns the counter key for a client in a fixed window
func (r *CacheKeyStruct) RateLimitKey(scope, clientIP string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, clientIP, window)
}

// ListingKeys returns every key that must be dropped when class counters or statuses change
func (r *CacheKeyStruct) ListingKeys() []string {
	return []string{r.PopularClassesKey(), r.PopularInstructorsKey(), r.ApprovedClassesKey()}
}

var CacheKey = NewCacheKeyStruct()
