package services

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/mapper"
	"stashed/internal/models"
	"stashed/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserService interface {
	Register(email, password, displayName string) (*dto.UserGetDTO, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id uint) (*dto.UserGetDTO, error)
	Update(id uint, patch dto.UserPatch) (*dto.UserGetDTO, error)
	Destroy(id uint) (*dto.CascadeReport, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	cascade  CascadeService
}

func NewUserService(userRepo repository.UserRepository, cascade CascadeService) UserService {
	return &userServiceImpl{userRepo: userRepo, cascade: cascade}
}

func (s *userServiceImpl) Register(email, password, displayName string) (*dto.UserGetDTO, error) {
	if email == "" || password == "" || displayName == "" {
		return nil, apperrors.New(apperrors.KindMissingRequiredField,
			"email, password and display name are required")
	}
	email = strings.ToLower(email)
	if !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.KindInvalidEmailFormat, "email address is not valid")
	}
	if err := checkPasswordStrength(password); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not check for existing user")
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.KindDuplicateEmail, "a user with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "could not hash password")
	}
	user := &models.User{Email: email, PasswordHash: string(hash), DisplayName: displayName}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.Wrap(err, "could not create user")
	}
	return mapper.ToUserGetDTO(user), nil
}

// Authenticate returns the same InvalidCredentials error for an unknown email
// and a wrong password, so callers cannot probe which addresses exist.
func (s *userServiceImpl) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(email))
	if err != nil {
		return nil, apperrors.Wrap(err, "could not look up user")
	}
	if user == nil {
		return nil, apperrors.New(apperrors.KindInvalidCredentials, "email or password is incorrect")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.New(apperrors.KindInvalidCredentials, "email or password is incorrect")
	}
	return user, nil
}

func (s *userServiceImpl) GetByID(id uint) (*dto.UserGetDTO, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}
	return mapper.ToUserGetDTO(user), nil
}

func (s *userServiceImpl) Update(id uint, patch dto.UserPatch) (*dto.UserGetDTO, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return mapper.ToUserGetDTO(user), nil
	}
	if patch.Email != nil {
		email := strings.ToLower(*patch.Email)
		if !emailPattern.MatchString(email) {
			return nil, apperrors.New(apperrors.KindInvalidEmailFormat, "email address is not valid")
		}
		if email != user.Email {
			existing, err := s.userRepo.FindByEmail(email)
			if err != nil {
				return nil, apperrors.Wrap(err, "could not check for existing user")
			}
			if existing != nil {
				return nil, apperrors.New(apperrors.KindDuplicateEmail, "a user with that email already exists")
			}
		}
		user.Email = email
	}
	if patch.Password != nil {
		if err := checkPasswordStrength(*patch.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(err, "could not hash password")
		}
		user.PasswordHash = string(hash)
	}
	if patch.DisplayName != nil {
		user.DisplayName = *patch.DisplayName
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.Wrap(err, "could not update user")
	}
	return mapper.ToUserGetDTO(user), nil
}

func (s *userServiceImpl) Destroy(id uint) (*dto.CascadeReport, error) {
	return s.cascade.DestroyUser(id)
}

func (s *userServiceImpl) findUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "there is no user with that ID")
		}
		return nil, apperrors.Wrap(err, "could not load user")
	}
	return user, nil
}

func checkPasswordStrength(password string) error {
	if len(password) < 8 {
		return apperrors.New(apperrors.KindWeakPassword, "password must be at least 8 characters long")
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower {
		return apperrors.New(apperrors.KindWeakPassword, "password must include at least one lowercase letter")
	}
	if !hasUpper {
		return apperrors.New(apperrors.KindWeakPassword, "password must include at least one uppercase letter")
	}
	if !hasDigit {
		return apperrors.New(apperrors.KindWeakPassword, "password must include at least one number")
	}
	return nil
}
