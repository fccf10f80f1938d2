package catalog

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=catalog_cache.go -destination=mocks/catalog_cache_mock.go -package=mocks

type Store interface {
	GetServiceByID(ctx context.Context, id string) (Service, error)
	FindClubByID(ctx context.Context, id string) (Club, error)
}

// Cached keeps recently read services and clubs in memory. Catalog data is
// managed elsewhere, so a short TTL bounds how stale a lookup can be.
// Not-found results are never cached.
type Cached struct {
	store Store
	cache *cache.Cache
}

func NewCached(store Store, ttl time.Duration) *Cached {
	return &Cached{
		store: store,
		cache: cache.New(ttl, 5*ttl),
	}
}

func (c *Cached) GetServiceByID(ctx context.Context, id string) (Service, error) {
	key := "service:" + id

	if cached, found := c.cache.Get(key); found {
		return cached.(Service), nil
	}

	service, err := c.store.GetServiceByID(ctx, id)

	if err != nil {
		return Service{}, err
	}

	c.cache.Set(key, service, cache.DefaultExpiration)

	return service, nil
}

func (c *Cached) FindClubByID(ctx context.Context, id string) (Club, error) {
	key := "club:" + id

	if cached, found := c.cache.Get(key); found {
		return cached.(Club), nil
	}

	club, err := c.store.FindClubByID(ctx, id)

	if err != nil {
		return Club{}, err
	}

	c.cache.Set(key, club, cache.DefaultExpiration)

	return club, nil
}
