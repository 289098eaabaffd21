package store

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidexdd-hash/mysticbot/internal/platform/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/sentinel"
)

func TestInstrumentedStoreContract(t *testing.T) {
	runStoreContract(t, func(*testing.T) Store {
		return NewInstrumented(NewInMemory(), "memory", metrics.NewWith(prometheus.NewRegistry()))
	})
}

func TestInstrumentedStoreCountsOperations(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewWith(prometheus.NewRegistry())
	s := NewInstrumented(NewInMemory(), "memory", m)

	p, err := models.NewProfile(id.NewUserID(), "15.05.1990", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, p))
	_, err = s.Get(ctx, p.UserID)
	require.NoError(t, err)
	_, err = s.Get(ctx, id.NewUserID())
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.Equal(t, 1.0, promtest.ToFloat64(m.StoreOps.WithLabelValues("memory", "put", "ok")))
	assert.Equal(t, 2.0, promtest.ToFloat64(m.StoreOps.WithLabelValues("memory", "get", "ok")))
	assert.Equal(t, 0.0, promtest.ToFloat64(m.StoreOps.WithLabelValues("memory", "get", "error")))
}

func TestInstrumentedStoreWithoutMetrics(t *testing.T) {
	s := NewInstrumented(NewInMemory(), "memory", nil)
	_, err := s.Get(context.Background(), id.NewUserID())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
