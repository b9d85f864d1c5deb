package handlers

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"pricewise/store"
)

// dataStore is the reference data store shared by all handlers. main
// constructs it once at startup and injects it through Setup; nothing else
// creates one.
var dataStore *store.Store

// responseCache holds short-lived dashboard and optimizer payloads so
// repeated reads skip the aggregation work.
var responseCache = gocache.New(5*time.Minute, 10*time.Minute)

// Setup injects the reference data store and resets cached responses.
func Setup(s *store.Store) {
	dataStore = s
	responseCache.Flush()
}
