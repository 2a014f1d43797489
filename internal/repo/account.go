package repo

import (
	"BucketShare/internal/model"
	"context"

	"gorm.io/gorm"
)

// AccountRepository определяет контракт доступа к Account для слоя сервиса.
type AccountRepository interface {
	// CreateAccount вставляет новый аккаунт; уникальность username/email
	// отдаётся как gorm.ErrDuplicatedKey.
	CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error)

	// GetAccountByID возвращает аккаунт по id или gorm.ErrRecordNotFound.
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)

	// GetAccountByLoginOrEmail ищет аккаунт, у которого username ИЛИ email
	// равен переданному значению.
	GetAccountByLoginOrEmail(ctx context.Context, value string) (*model.Account, error)

	// UpdateAccount сохраняет изменённые поля аккаунта.
	UpdateAccount(ctx context.Context, account *model.Account) error
}

type accountRepo struct {
	db *gorm.DB
}

// NewAccountRepository создаёт реализацию репозитория для Account.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateAccount(ctx context.Context, account *model.Account) (*model.Account, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func (r *accountRepo) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) GetAccountByLoginOrEmail(ctx context.Context, value string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", value, value).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) UpdateAccount(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}
