package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/delivery/http/response"
	"hivefund/internal/domain/entity"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createDonationRequest is the payload for POST /donations.
type createDonationRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Amount     int64     `json:"amount" validate:"required,gt=0"`
	Anonymous  bool      `json:"anonymous"`
	Message    string    `json:"message" validate:"max=500"`
}

// donationView is the public shape of a donation. The donor ID is omitted
// for anonymous donations.
type donationView struct {
	ID            uuid.UUID  `json:"id"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	Amount        int64      `json:"amount"`
	PaymentStatus string     `json:"payment_status"`
	Anonymous     bool       `json:"anonymous"`
	Message       string     `json:"message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newDonationView(d *entity.Donation) donationView {
	view := donationView{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		Amount:        d.Amount,
		PaymentStatus: string(d.PaymentStatus),
		Anonymous:     d.Anonymous,
		Message:       d.Message,
		CreatedAt:     d.CreatedAt,
	}
	if !d.Anonymous {
		userID := d.UserID
		view.UserID = &userID
	}

	return view
}

// DonationHandler holds dependencies for donation-related handlers.
type DonationHandler struct {
	uc     usecase.DonationUsecase
	logger *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler, injected by Fx.
func NewDonationHandler(uc usecase.DonationUsecase, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles recording a donation to a campaign.
func (h *DonationHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind donation request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donation, err := h.uc.CreateDonation(c.Request().Context(), &usecase.CreateDonationInput{
		CampaignID: req.CampaignID,
		UserID:     userID,
		Amount:     req.Amount,
		Anonymous:  req.Anonymous,
		Message:    req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newDonationView(donation), "Donation recorded successfully")
}

// ListByCampaign handles listing the donations made to a campaign.
func (h *DonationHandler) ListByCampaign(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	donations, err := h.uc.ListCampaignDonations(c.Request().Context(), campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]donationView, 0, len(donations))
	for _, donation := range donations {
		views = append(views, newDonationView(donation))
	}

	return response.Success(c, http.StatusOK, views, "Donations retrieved successfully")
}

// userDonationView is a donation in the caller's own giving history, joined
// with the title of the campaign it funded.
type userDonationView struct {
	donationView
	CampaignTitle string `json:"campaign_title"`
}

// ListMine handles listing the authenticated user's giving history.
func (h *DonationHandler) ListMine(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	donations, err := h.uc.ListUserDonations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]userDonationView, 0, len(donations))
	for _, donation := range donations {
		views = append(views, userDonationView{
			donationView:  newDonationView(&donation.Donation),
			CampaignTitle: donation.CampaignTitle,
		})
	}

	return response.Success(c, http.StatusOK, views, "Donations retrieved successfully")
}

// leaderboardEntryView is one row of the public donor leaderboard.
type leaderboardEntryView struct {
	DonorName     string `json:"donor_name"`
	TotalDonated  int64  `json:"total_donated"`
	DonationCount int64  `json:"donation_count"`
}

// leaderboardResponse echoes the applied filters alongside the ranking.
type leaderboardResponse struct {
	Timeframe   string                 `json:"timeframe"`
	Category    string                 `json:"category"`
	Leaderboard []leaderboardEntryView `json:"leaderboard"`
}

// Leaderboard handles ranking the top donors, optionally narrowed by
// timeframe and campaign category query parameters.
func (h *DonationHandler) Leaderboard(c echo.Context) error {
	timeframe := c.QueryParam("timeframe")
	category := c.QueryParam("category")

	entries, err := h.uc.Leaderboard(c.Request().Context(), &usecase.LeaderboardInput{
		Timeframe: timeframe,
		Category:  category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := leaderboardResponse{
		Timeframe:   timeframe,
		Category:    category,
		Leaderboard: make([]leaderboardEntryView, 0, len(entries)),
	}
	if resp.Timeframe == "" {
		resp.Timeframe = "all-time"
	}
	if resp.Category == "" {
		resp.Category = "all"
	}
	for _, entry := range entries {
		resp.Leaderboard = append(resp.Leaderboard, leaderboardEntryView{
			DonorName:     entry.DonorName,
			TotalDonated:  entry.TotalDonated,
			DonationCount: entry.DonationCount,
		})
	}

	return response.Success(c, http.StatusOK, resp, "Leaderboard retrieved successfully")
}
