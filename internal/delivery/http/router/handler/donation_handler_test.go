package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/domain/entity"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDonationUsecase struct {
	mock.Mock
}

func (m *mockDonationUsecase) CreateDonation(ctx context.Context, input *usecase.CreateDonationInput) (*entity.Donation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Donation), args.Error(1)
}

func (m *mockDonationUsecase) ListCampaignDonations(ctx context.Context, campaignID uuid.UUID) ([]*entity.Donation, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Donation), args.Error(1)
}

func (m *mockDonationUsecase) ListUserDonations(ctx context.Context, userID uuid.UUID) ([]*entity.UserDonation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.UserDonation), args.Error(1)
}

func (m *mockDonationUsecase) Leaderboard(ctx context.Context, input *usecase.LeaderboardInput) ([]*entity.LeaderboardEntry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.LeaderboardEntry), args.Error(1)
}

func TestDonationHandler_Create(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	donorID := uuid.New()
	campaignID := uuid.New()
	donation := &entity.Donation{
		ID:            uuid.New(),
		CampaignID:    campaignID,
		UserID:        donorID,
		Amount:        2500,
		PaymentStatus: entity.PaymentStatusCompleted,
	}
	uc.On("CreateDonation", mock.Anything, mock.MatchedBy(func(in *usecase.CreateDonationInput) bool {
		return in.CampaignID == campaignID && in.UserID == donorID && in.Amount == 2500
	})).Return(donation, nil)

	body := `{"campaign_id":"` + campaignID.String() + `","amount":2500}`
	c, rec := newJSONContext(e, http.MethodPost, "/donations", body)
	deliverycontext.SetUserID(c, donorID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDonationHandler_Create_RejectsNonPositiveAmount(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	body := `{"campaign_id":"` + uuid.NewString() + `","amount":0}`
	c, _ := newJSONContext(e, http.MethodPost, "/donations", body)
	deliverycontext.SetUserID(c, uuid.New())

	err := h.Create(c)
	require.Error(t, err)

	uc.AssertNotCalled(t, "CreateDonation", mock.Anything, mock.Anything)
}

func TestDonationHandler_ListByCampaign_HidesAnonymousDonors(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	campaignID := uuid.New()
	anonDonor := uuid.New()
	donations := []*entity.Donation{
		{ID: uuid.New(), CampaignID: campaignID, UserID: anonDonor, Amount: 100, Anonymous: true},
		{ID: uuid.New(), CampaignID: campaignID, UserID: uuid.New(), Amount: 250},
	}
	uc.On("ListCampaignDonations", mock.Anything, campaignID).Return(donations, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/campaigns/:id/donations", "")
	c.SetParamNames("id")
	c.SetParamValues(campaignID.String())

	require.NoError(t, h.ListByCampaign(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), anonDonor.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestDonationHandler_ListMine(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	donorID := uuid.New()
	history := []*entity.UserDonation{
		{
			Donation:      entity.Donation{ID: uuid.New(), UserID: donorID, Amount: 500},
			CampaignTitle: "Save the bees",
		},
	}
	uc.On("ListUserDonations", mock.Anything, donorID).Return(history, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/donations/user", "")
	deliverycontext.SetUserID(c, donorID)

	require.NoError(t, h.ListMine(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Save the bees")
}

func TestDonationHandler_Leaderboard(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	entries := []*entity.LeaderboardEntry{
		{DonorName: "Ada Lovelace", TotalDonated: 9000, DonationCount: 3},
	}
	uc.On("Leaderboard", mock.Anything, mock.MatchedBy(func(in *usecase.LeaderboardInput) bool {
		return in.Timeframe == "weekly" && in.Category == "community"
	})).Return(entries, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/donations/leaderboard?timeframe=weekly&category=community", "")

	require.NoError(t, h.Leaderboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "weekly", data["timeframe"])
	assert.Equal(t, "community", data["category"])

	board, ok := data["leaderboard"].([]any)
	require.True(t, ok)
	require.Len(t, board, 1)
}

func TestDonationHandler_Leaderboard_DefaultsToAllTime(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	uc.On("Leaderboard", mock.Anything, mock.MatchedBy(func(in *usecase.LeaderboardInput) bool {
		return in.Timeframe == "" && in.Category == ""
	})).Return([]*entity.LeaderboardEntry{}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/donations/leaderboard", "")

	require.NoError(t, h.Leaderboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"timeframe":"all-time"`)
	assert.Contains(t, rec.Body.String(), `"category":"all"`)
}

func TestDonationHandler_ListByCampaign_BadID(t *testing.T) {
	e := newTestEcho()
	uc := new(mockDonationUsecase)
	h := NewDonationHandler(uc, newTestLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/campaigns/:id/donations", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.ListByCampaign(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
