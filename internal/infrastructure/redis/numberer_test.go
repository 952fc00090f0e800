package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter contador en memoria con la semántica de INCR/EXPIRE.
type fakeCounter struct {
	values  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{values: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *goredis.IntCmd {
	cmd := goredis.NewIntCmd(ctx, "incr", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.values[key]++
	cmd.SetVal(f.values[key])
	return cmd
}

func (f *fakeCounter) Expire(ctx context.Context, key string, d time.Duration) *goredis.BoolCmd {
	f.expires[key] = d
	cmd := goredis.NewBoolCmd(ctx, "expire", key, d)
	cmd.SetVal(true)
	return cmd
}

func TestNumberer_SecuenciaDiariaConTTL(t *testing.T) {
	c := newFakeCounter()
	n := NewNumberer(c)
	day := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	first, err := n.Next(context.Background(), "ORD", day)
	require.NoError(t, err)
	second, err := n.Next(context.Background(), "ORD", day)
	require.NoError(t, err)

	assert.Equal(t, "ORD-260307-0001", first)
	assert.Equal(t, "ORD-260307-0002", second)
	assert.Equal(t, counterTTL, c.expires["docseq:ORD:260307"])
}

func TestNumberer_PrefijosIndependientes(t *testing.T) {
	n := NewNumberer(newFakeCounter())
	day := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	_, _ = n.Next(context.Background(), "ORD", day)
	txn, err := n.Next(context.Background(), "TXN", day)
	require.NoError(t, err)
	assert.Equal(t, "TXN-260307-0001", txn)
}

func TestNumberer_ErrorDeRedis(t *testing.T) {
	c := newFakeCounter()
	c.err = errors.New("connection refused")

	_, err := NewNumberer(c).Next(context.Background(), "ORD", time.Now())
	assert.Error(t, err)
}
