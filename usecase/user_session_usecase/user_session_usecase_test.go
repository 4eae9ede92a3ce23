package user_session_usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newscleanse/domain"
	"newscleanse/mocks"
)

func TestUserSessionUsecase_StartAndEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	starter := mocks.NewMockStartSessionPort(ctrl)
	ender := mocks.NewMockEndSessionPort(ctrl)
	u := NewUserSessionUsecase(starter, ender)

	starter.EXPECT().StartSession(gomock.Any(), int64(7)).Return(int64(31), nil)
	ender.EXPECT().EndSession(gomock.Any(), int64(31), int64(7)).Return(125, nil)

	id, err := u.Start(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(31), id)

	seconds, err := u.End(context.Background(), 31, 7)
	require.NoError(t, err)
	require.Equal(t, 125, seconds)
}

func TestUserSessionUsecase_EndUnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	starter := mocks.NewMockStartSessionPort(ctrl)
	ender := mocks.NewMockEndSessionPort(ctrl)
	u := NewUserSessionUsecase(starter, ender)

	ender.EXPECT().EndSession(gomock.Any(), int64(99), int64(7)).Return(0, domain.ErrUserSessionNotFound)

	_, err := u.End(context.Background(), 99, 7)
	require.ErrorIs(t, err, domain.ErrUserSessionNotFound)
}
