package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gestion-escolar/escuela-api/internal/models"
	appErrors "github.com/gestion-escolar/escuela-api/pkg/errors"
)

type rolStore interface {
	FindByUserID(ctx context.Context, userID string) (models.Rol, error)
}

type rolCacheRecorder interface {
	RecordRoleCache(hit bool)
}

// RolService resolves a user's privilege tier from the role store with
// a redis read-through cache. Resolution is fail closed: a store error
// is returned as an error, never silently mapped to a default role.
// Only a genuinely absent assignment resolves to the unprivileged tier.
type RolService struct {
	repo    rolStore
	cache   *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
	metrics rolCacheRecorder
}

// NewRolService constructs a RolService. cache and metrics may be nil.
func NewRolService(repo rolStore, cache *redis.Client, ttl time.Duration, logger *zap.Logger, metrics rolCacheRecorder) *RolService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RolService{repo: repo, cache: cache, ttl: ttl, logger: logger, metrics: metrics}
}

func rolCacheKey(userID string) string {
	return "rol:" + userID
}

// Resolve returns the role assigned to userID, defaulting to the
// unprivileged tier when no assignment row exists.
func (s *RolService) Resolve(ctx context.Context, userID string) (models.Rol, error) {
	if userID == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "userId es requerido")
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, rolCacheKey(userID)).Result()
		switch {
		case err == nil:
			if s.metrics != nil {
				s.metrics.RecordRoleCache(true)
			}
			return models.ParseRol(cached), nil
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("role cache read failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordRoleCache(false)
		}
	}

	rol, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			rol = models.RolUsuario
		} else {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo consultar el rol")
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rolCacheKey(userID), string(rol), s.ttl).Err(); err != nil {
			s.logger.Warn("role cache write failed", zap.Error(err))
		}
	}

	return rol, nil
}

// Invalidate drops the cached role for a user after an assignment
// change.
func (s *RolService) Invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, rolCacheKey(userID)).Err(); err != nil {
		s.logger.Warn("role cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}
