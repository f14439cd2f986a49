// Package redis implementa el limitador de intentos de login sobre Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jcastellr/almacen-api/internal/application/auth"
	"github.com/jcastellr/almacen-api/pkg/config"
)

var _ auth.AttemptLimiter = (*AttemptLimiter)(nil)

// attemptWindow es la ventana dentro de la cual se cuentan los intentos fallidos.
const attemptWindow = 5 * time.Minute

// AttemptLimiter cuenta los intentos fallidos de login por carné en Redis.
// La clave expira sola a los 5 minutos del primer fallo; no hay reset manual.
type AttemptLimiter struct {
	rdb *redis.Client
}

// NewAttemptLimiter construye el limitador contra la instancia configurada.
func NewAttemptLimiter(cfg config.RedisConfig) *AttemptLimiter {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &AttemptLimiter{rdb: rdb}
}

func attemptKey(staffIDNumber string) string {
	return fmt.Sprintf("login_attempts:%s", staffIDNumber)
}

// RecordFailure incrementa el contador del carné y devuelve el total acumulado
// dentro de la ventana vigente.
func (l *AttemptLimiter) RecordFailure(ctx context.Context, staffIDNumber string) (int, error) {
	key := attemptKey(staffIDNumber)
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr login attempts: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return int(count), fmt.Errorf("expire login attempts: %w", err)
		}
	}
	return int(count), nil
}

// Ping verifica la conexión con Redis.
func (l *AttemptLimiter) Ping(ctx context.Context) error {
	return l.rdb.Ping(ctx).Err()
}

// Close cierra la conexión.
func (l *AttemptLimiter) Close() error {
	return l.rdb.Close()
}
