package postgres

import (
	"context"

	"hivefund/internal/domain/repository"
	"hivefund/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a transaction manager backed by the given DB handle.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Repositories obtained
// from the factory passed to fn all share that transaction's connection.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCampaignRepository() repository.CampaignRepository {
	return NewCampaignRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDonationRepository() repository.DonationRepository {
	return NewDonationRepository(f.tx)
}
