// Package redis genera números de documento con un contador diario en Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/jhoicas/autoparts-api/internal/application/sales"
	domsales "github.com/jhoicas/autoparts-api/internal/domain/sales"
	"github.com/jhoicas/autoparts-api/pkg/config"
)

var _ sales.NumberGenerator = (*Numberer)(nil)

// counterTTL el contador de un día solo se usa ese día; 48h cubre cambios de zona horaria.
const counterTTL = 48 * time.Hour

// Counter subconjunto de redis usado por Numberer.
type Counter interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
}

// Numberer genera <PREFIX>-<YYMMDD>-<n> con INCR sobre docseq:<PREFIX>:<YYMMDD>.
type Numberer struct {
	rdb Counter
}

// NewClient conecta a Redis y verifica con PING.
func NewClient(cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewNumberer construye el generador sobre un cliente (o cualquier Counter).
func NewNumberer(rdb Counter) *Numberer {
	return &Numberer{rdb: rdb}
}

// Next incrementa el contador del día y formatea el número.
func (n *Numberer) Next(ctx context.Context, prefix string, at time.Time) (string, error) {
	key := fmt.Sprintf("docseq:%s:%s", prefix, domsales.DayKey(at))
	seq, err := n.rdb.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("incr %s: %w", key, err)
	}
	if seq == 1 {
		if err := n.rdb.Expire(ctx, key, counterTTL).Err(); err != nil {
			return "", fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return domsales.DocumentNumber(prefix, at, seq), nil
}
