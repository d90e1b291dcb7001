package postgres

import (
	"context"

	"hivefund/internal/domain/entity"
	"hivefund/internal/domain/repository"
	"hivefund/internal/errors"
	"hivefund/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository backed by PostgreSQL.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := userToModel(user)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.UserModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userToEntity(&m), nil
}

// FindByEmail returns every account registered under the email, ordered by
// creation time so callers relying on the first match get a stable result.
func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	var ms []model.UserModel

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by email")
	}

	users := make([]*entity.User, 0, len(ms))
	for i := range ms {
		users = append(users, userToEntity(&ms[i]))
	}

	return users, nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var ms []model.UserModel

	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(ms))
	for i := range ms {
		users = append(users, userToEntity(&ms[i]))
	}

	return users, nil
}

func userToModel(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Address:      u.Address,
		PostCode:     u.PostCode,
		Country:      u.Country,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userToEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Address:      m.Address,
		PostCode:     m.PostCode,
		Country:      m.Country,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
