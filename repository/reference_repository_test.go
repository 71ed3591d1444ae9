package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"batas-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	lawCalls    int
	lawyerCalls int
	err         error
}

func (s *countingStore) Laws(ctx context.Context) ([]models.RelevantLaw, error) {
	s.lawCalls++
	if s.err != nil {
		return nil, s.err
	}
	return DefaultLaws(), nil
}

func (s *countingStore) Lawyers(ctx context.Context) ([]models.Lawyer, error) {
	s.lawyerCalls++
	if s.err != nil {
		return nil, s.err
	}
	return DefaultLawyers(), nil
}

func TestDefaultCatalog(t *testing.T) {
	laws := DefaultLaws()
	require.Len(t, laws, 5)
	assert.Equal(t, "Civil Code of the Philippines, Article 1134", laws[0].Law)

	lawyers := DefaultLawyers()
	require.Len(t, lawyers, 5)
	for _, l := range lawyers {
		assert.NotEmpty(t, l.ID)
		assert.NotNil(t, l.Latitude, l.ID)
		assert.NotNil(t, l.Longitude, l.ID)
	}
}

func TestStaticReferenceStore_ReturnsCopies(t *testing.T) {
	store := NewStaticReferenceStore(nil, nil)
	ctx := context.Background()

	laws, err := store.Laws(ctx)
	require.NoError(t, err)
	laws[0].Title = "changed"

	again, err := store.Laws(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Prescription and Possession Rights", again[0].Title)
}

func TestStaticReferenceStore_CustomLists(t *testing.T) {
	store := NewStaticReferenceStore([]models.RelevantLaw{}, []models.Lawyer{{ID: "x"}})

	laws, err := store.Laws(context.Background())
	require.NoError(t, err)
	assert.Empty(t, laws)

	lawyers, err := store.Lawyers(context.Background())
	require.NoError(t, err)
	require.Len(t, lawyers, 1)
	assert.Equal(t, "x", lawyers[0].ID)
}

func TestCachedReferenceStore_HitsWrappedStoreOnce(t *testing.T) {
	inner := &countingStore{}
	cached := NewCachedReferenceStore(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		laws, err := cached.Laws(ctx)
		require.NoError(t, err)
		assert.Len(t, laws, 5)

		lawyers, err := cached.Lawyers(ctx)
		require.NoError(t, err)
		assert.Len(t, lawyers, 5)
	}

	assert.Equal(t, 1, inner.lawCalls)
	assert.Equal(t, 1, inner.lawyerCalls)
}

func TestCachedReferenceStore_DoesNotCacheErrors(t *testing.T) {
	inner := &countingStore{err: errors.New("connection refused")}
	cached := NewCachedReferenceStore(inner, time.Minute)
	ctx := context.Background()

	_, err := cached.Laws(ctx)
	require.Error(t, err)

	inner.err = nil
	laws, err := cached.Laws(ctx)
	require.NoError(t, err)
	assert.Len(t, laws, 5)
	assert.Equal(t, 2, inner.lawCalls)
}

func TestCachedReferenceStore_Expires(t *testing.T) {
	inner := &countingStore{}
	cached := NewCachedReferenceStore(inner, 20*time.Millisecond)
	ctx := context.Background()

	_, err := cached.Lawyers(ctx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := cached.Lawyers(ctx)
		return err == nil && inner.lawyerCalls >= 2
	}, time.Second, 10*time.Millisecond)
}
