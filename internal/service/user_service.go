package service

import (
	"context"

	"chatlog-be/internal/dto"
	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId int64) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId int64) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, apperror.Store("user.get_profile", err)
	}
	if user == nil {
		return nil, apperror.New(apperror.KindNotFound, "user.get_profile")
	}

	return &dto.UserProfileResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
