package impl

import (
	"context"
	"io"
	"log/slog"

	"hivefund/internal/domain/entity"
	"hivefund/internal/domain/repository"
	"hivefund/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

type mockCampaignRepository struct {
	mock.Mock
}

func (m *mockCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	args := m.Called(ctx, campaign)

	return args.Error(0)
}

func (m *mockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *mockCampaignRepository) List(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Campaign), args.Error(1)
}

func (m *mockCampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	args := m.Called(ctx, campaign)

	return args.Error(0)
}

func (m *mockCampaignRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)

	return args.Error(0)
}

func (m *mockCampaignRepository) AddDonationAmount(ctx context.Context, id uuid.UUID, amount int64) error {
	args := m.Called(ctx, id, amount)

	return args.Error(0)
}

type mockDonationRepository struct {
	mock.Mock
}

func (m *mockDonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	args := m.Called(ctx, donation)

	return args.Error(0)
}

func (m *mockDonationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Donation, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Donation), args.Error(1)
}

func (m *mockDonationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDonation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.UserDonation), args.Error(1)
}

func (m *mockDonationRepository) Leaderboard(ctx context.Context, filter repository.LeaderboardFilter) ([]*entity.LeaderboardEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.LeaderboardEntry), args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

type mockSuggester struct {
	mock.Mock
}

func (m *mockSuggester) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)

	return args.String(0), args.Error(1)
}

// stubTxManager runs the callback directly against a fixed set of repositories,
// standing in for a real database transaction.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

type stubRepoFactory struct {
	users     repository.UserRepository
	campaigns repository.CampaignRepository
	donations repository.DonationRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository {
	return f.users
}

func (f *stubRepoFactory) NewCampaignRepository() repository.CampaignRepository {
	return f.campaigns
}

func (f *stubRepoFactory) NewDonationRepository() repository.DonationRepository {
	return f.donations
}
