package memcache_fx

import (
	"go.uber.org/fx"
	tm "tripwise/internal/models/trip_models"
	mem "tripwise/pkg/memcache"
)

var Module = fx.Provide(provideDraftStore)

func provideDraftStore() mem.Store[tm.DraftSession] {
	return mem.NewTTLStore[tm.DraftSession]()
}
