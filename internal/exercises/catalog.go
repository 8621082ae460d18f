package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vansan/gymtrack/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=exercises_test

const (
	catalogCacheExpireSeconds = 60 * 10
)

type catalogRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	List(ctx context.Context, filter ListFilter) ([]Exercise, error)
	AllExist(ctx context.Context, ids []string) (bool, error)
}

// Catalog wraps the exercises repo with a freecache layer for the
// listing endpoint. The catalog changes rarely (two users adding the
// occasional exercise), so a short TTL plus invalidation on Add is enough.
type Catalog struct {
	repo  catalogRepo
	cache *freecache.Cache
}

func NewCatalog(repo catalogRepo) *Catalog {
	megabyte := 1024 * 1024
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(2 * megabyte),
	}
}

func (c *Catalog) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercises.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := c.repo.Add(ctx, exercise)
	if err != nil {
		return nil, err
	}

	// stale listings would hide the new exercise from session forms
	c.cache.Clear()

	return added, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*Exercise, error) {
	return c.repo.Get(ctx, id)
}

func (c *Catalog) AllExist(ctx context.Context, ids []string) (bool, error) {
	return c.repo.AllExist(ctx, ids)
}

func (c *Catalog) List(ctx context.Context, filter ListFilter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercises.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := catalogCacheKey(filter)
	if cachedBytes, err := c.cache.Get(cacheKey); err == nil {
		var cached []Exercise
		unmarshalErr := json.Unmarshal(cachedBytes, &cached)
		if unmarshalErr == nil {
			log.Tracef("exercises listing found in cache [%s]", cacheKey)
			return cached, nil
		}
		log.Errorf("failed to unmarshal cached exercises listing: %s", unmarshalErr)
	}

	listed, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	listedBytes, err := json.Marshal(listed)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises listing: %w", err)
	}
	if err := c.cache.Set(cacheKey, listedBytes, catalogCacheExpireSeconds); err != nil {
		log.Errorf("failed to set exercises listing cache: %s", err)
	}

	return listed, nil
}

func catalogCacheKey(filter ListFilter) []byte {
	return []byte(fmt.Sprintf(
		"list::%s::%s::%s",
		filter.Category, filter.CreatorID, strings.ToLower(filter.Search),
	))
}
