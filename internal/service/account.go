package service

import (
	"BucketShare/internal/model"
	"BucketShare/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountService инкапсулирует регистрацию, вход и изменение профиля.
type AccountService struct {
	repo repo.AccountRepository
}

func NewAccountService(r repo.AccountRepository) *AccountService {
	return &AccountService{repo: r}
}

// AccountUpdate — частичное обновление профиля: nil-поля не трогаются.
type AccountUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// Register создаёт аккаунт с bcrypt-хэшем пароля.
// Занятые username/email отдаются как ErrConflict.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*model.Account, error) {
	for _, taken := range []string{username, email} {
		if _, err := s.repo.GetAccountByLoginOrEmail(ctx, taken); err == nil {
			return nil, ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	account, err := s.repo.CreateAccount(ctx, &model.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return account, nil
}

// Login ищет аккаунт по username или email и сверяет пароль.
func (s *AccountService) Login(ctx context.Context, loginOrEmail, password string) (*model.Account, error) {
	account, err := s.repo.GetAccountByLoginOrEmail(ctx, loginOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Get возвращает аккаунт по id.
func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

// checkTaken возвращает ErrConflict, если значение занято другим аккаунтом.
func (s *AccountService) checkTaken(ctx context.Context, value string, selfID int64) error {
	other, err := s.repo.GetAccountByLoginOrEmail(ctx, value)
	if err == nil && other.ID != selfID {
		return ErrConflict
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Update применяет частичное обновление профиля текущего аккаунта.
func (s *AccountService) Update(ctx context.Context, id int64, patch AccountUpdate) (*model.Account, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil && *patch.Username != account.Username {
		if err := s.checkTaken(ctx, *patch.Username, id); err != nil {
			return nil, err
		}
		account.Username = *patch.Username
	}
	if patch.Email != nil && *patch.Email != account.Email {
		if err := s.checkTaken(ctx, *patch.Email, id); err != nil {
			return nil, err
		}
		account.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		account.PasswordHash = string(hash)
	}

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return account, nil
}
