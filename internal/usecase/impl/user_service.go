// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/domain/entity"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/repository"
	"hivefund/internal/domain/service"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		PostCode:     input.PostCode,
		Country:      input.Country,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if len(existing) > 0 {
			return domainerrors.ErrEmailTaken.WrapMessage("registration rejected")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// The unique index can still fire under concurrent registration.
			if errors.Is(err, repository.ErrEmailExists) {
				return domainerrors.ErrEmailTaken.WrapMessage("registration rejected")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the credentials and issues a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	// FindByEmail returns oldest first, so the first match is deterministic.
	candidates, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}
	if len(candidates) == 0 {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser := candidates[0]

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(loggedInUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        loggedInUser,
	}, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ListUsers returns every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
