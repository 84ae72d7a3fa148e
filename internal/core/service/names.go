package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/api/metrics"
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// NameResolver turns stored user references into display names when a
// response is built. The cache is optional and never authoritative.
type NameResolver struct {
	users ports.UserDirectory
	cache ports.NameCache
	log   zerolog.Logger
}

// NewNameResolver returns a resolver; cache may be nil.
func NewNameResolver(users ports.UserDirectory, cache ports.NameCache, log zerolog.Logger) *NameResolver {
	return &NameResolver{users: users, cache: cache, log: log}
}

// Resolve maps every id to a display name. Ids that do not resolve map to
// domain.UnknownDisplayName.
func (r *NameResolver) Resolve(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := make(map[primitive.ObjectID]string, len(ids))
	keys := uniqueHex(ids)
	if len(keys) == 0 {
		return out, nil
	}

	missing := keys
	if r.cache != nil {
		cached, err := r.cache.GetNames(ctx, keys)
		if err != nil {
			r.log.Warn().Err(err).Int("ids", len(keys)).Msg("name cache read failed, using directory")
			metrics.NameCacheLookupsTotal.WithLabelValues("error").Add(float64(len(keys)))
		} else {
			missing = missing[:0:0]
			for _, k := range keys {
				name, ok := cached[k]
				if !ok {
					missing = append(missing, k)
					continue
				}
				id, _ := primitive.ObjectIDFromHex(k)
				out[id] = name
			}
			metrics.NameCacheLookupsTotal.WithLabelValues("hit").Add(float64(len(keys) - len(missing)))
			metrics.NameCacheLookupsTotal.WithLabelValues("miss").Add(float64(len(missing)))
		}
	}

	if len(missing) > 0 {
		lookup := make([]primitive.ObjectID, 0, len(missing))
		for _, k := range missing {
			id, _ := primitive.ObjectIDFromHex(k)
			lookup = append(lookup, id)
		}
		users, err := r.users.FindByIDs(ctx, lookup)
		if err != nil {
			return nil, fmt.Errorf("resolve names: %w", err)
		}
		fresh := make(map[string]string, len(users))
		for _, u := range users {
			out[u.ID] = u.DisplayName
			fresh[u.ID.Hex()] = u.DisplayName
		}
		if r.cache != nil && len(fresh) > 0 {
			if err := r.cache.SetNames(ctx, fresh); err != nil {
				r.log.Warn().Err(err).Msg("name cache write failed")
			}
		}
	}

	for _, id := range ids {
		if _, ok := out[id]; !ok {
			out[id] = domain.UnknownDisplayName
		}
	}
	return out, nil
}

func uniqueHex(ids []primitive.ObjectID) []string {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id.Hex())
	}
	return out
}
