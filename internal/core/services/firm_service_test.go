package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFirmService_GetProfile_EmptyWhenMissing(t *testing.T) {
	repo := new(MockFirmRepository)
	repo.On("GetFirmProfile", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	profile, err := services.NewFirmService(repo).GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.FirmProfile{}, *profile)
}

func TestFirmService_UpdateProfile(t *testing.T) {
	repo := new(MockFirmRepository)
	repo.On("GetFirmProfile", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	repo.On("SaveFirmProfile", mock.Anything, mock.MatchedBy(func(p domain.FirmProfile) bool {
		return p.FirmName == "Sharma Traders" && p.CreatedBy == "u1" && p.LastUpdatedBy == "u1"
	})).Return(nil).Once()

	profile, err := services.NewFirmService(repo).UpdateProfile(context.Background(), dto.UpdateFirmProfileRequest{
		FirmName: "Sharma Traders", City: "Pune", GSTNumber: "27ABCDE1234F1Z5",
	}, "u1")

	require.NoError(t, err)
	assert.Equal(t, "Pune", profile.Header().Address)
	assert.False(t, profile.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestFirmService_UpdateProfile_RepositoryError(t *testing.T) {
	repo := new(MockFirmRepository)
	repo.On("GetFirmProfile", mock.Anything).Return(nil, assert.AnError).Once()

	_, err := services.NewFirmService(repo).UpdateProfile(context.Background(), dto.UpdateFirmProfileRequest{FirmName: "x"}, "u1")

	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "SaveFirmProfile", mock.Anything, mock.Anything)
}
