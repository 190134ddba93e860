package services

import (
	"errors"

	"news-portal-cms/models"
	"news-portal-cms/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetUsers() ([]models.User, error)
	CreateUser(req models.CreateUserRequest) (*models.User, error)
	UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(id uint, actorID uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleEditor
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "Username already exists"}
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Username != nil {
		fields["username"] = *req.Username
	}
	// An absent or empty password leaves the stored hash untouched
	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < 6 {
			return nil, models.ErrorValidation{Message: "Password must be at least 6 characters"}
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashedPassword)
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	if len(fields) > 0 {
		if err := s.userRepo.Updates(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, models.ErrorConflict{Message: "Username already exists"}
			}
			return nil, err
		}
	}

	return s.userRepo.GetByID(id)
}

func (s *userService) DeleteUser(id uint, actorID uint) error {
	if id == actorID {
		return models.ErrorValidation{Message: "Cannot delete your own account"}
	}

	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "User not found"}
		}
		return err
	}

	return s.userRepo.Delete(id)
}
