package service

import (
	"context"
	"errors"
	"testing"

	"batas-backend/models"
	"batas-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceService_ListLaws(t *testing.T) {
	svc := NewReferenceService(nil)

	laws, err := svc.ListLaws(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultLaws(), laws)
}

func TestReferenceService_ListLawyers(t *testing.T) {
	svc := NewReferenceService(repository.NewStaticReferenceStore(nil, nil))
	ctx := context.Background()

	all, err := svc.ListLawyers(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	property, err := svc.ListLawyers(ctx, "property", 0)
	require.NoError(t, err)
	assert.Len(t, property, 4)

	limited, err := svc.ListLawyers(ctx, string(models.CaseTypeProperty), 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "lawyer-1", limited[0].ID)

	labor, err := svc.ListLawyers(ctx, "Labor", 0)
	require.NoError(t, err)
	assert.Empty(t, labor)
}

func TestReferenceService_GetLawyer(t *testing.T) {
	svc := NewReferenceService(nil)

	lawyer, err := svc.GetLawyer(context.Background(), "lawyer-3")
	require.NoError(t, err)
	assert.Equal(t, "Atty. Ana Garcia", lawyer.Name)

	_, err = svc.GetLawyer(context.Background(), "lawyer-99")
	assert.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestReferenceService_StoreFailure(t *testing.T) {
	svc := NewReferenceService(&fakeStore{lawsErr: errors.New("down"), lawyersErr: errors.New("down")})

	_, err := svc.ListLaws(context.Background())
	assert.ErrorIs(t, err, ErrReferenceUnavailable)

	_, err = svc.ListLawyers(context.Background(), "", 0)
	assert.ErrorIs(t, err, ErrReferenceUnavailable)

	_, err = svc.GetLawyer(context.Background(), "lawyer-1")
	assert.ErrorIs(t, err, ErrReferenceUnavailable)
}
