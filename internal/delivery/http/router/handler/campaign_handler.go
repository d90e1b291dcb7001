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

// createCampaignRequest is the payload for POST /campaigns.
type createCampaignRequest struct {
	Title           string    `json:"title" validate:"required,max=255"`
	Description     string    `json:"description"`
	Category        string    `json:"category" validate:"required,max=100"`
	GoalAmount      int64     `json:"goal_amount" validate:"required,gt=0"`
	Deadline        time.Time `json:"deadline" validate:"required"`
	BeneficiaryType string    `json:"beneficiary_type" validate:"required,max=50"`
}

// updateCampaignRequest is the payload for PUT /campaigns/:id.
// Omitted fields keep their current values.
type updateCampaignRequest struct {
	Title           *string    `json:"title" validate:"omitempty,max=255"`
	Description     *string    `json:"description"`
	Category        *string    `json:"category" validate:"omitempty,max=100"`
	GoalAmount      *int64     `json:"goal_amount" validate:"omitempty,gt=0"`
	Deadline        *time.Time `json:"deadline"`
	BeneficiaryType *string    `json:"beneficiary_type" validate:"omitempty,max=50"`
	Status          *string    `json:"status" validate:"omitempty,oneof=active completed cancelled"`
}

// campaignView is the public shape of a campaign.
type campaignView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	GoalAmount      int64     `json:"goal_amount"`
	CurrentAmount   int64     `json:"current_amount"`
	Deadline        time.Time `json:"deadline"`
	BeneficiaryType string    `json:"beneficiary_type"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func newCampaignView(c *entity.Campaign) campaignView {
	return campaignView{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		GoalAmount:      c.GoalAmount,
		CurrentAmount:   c.CurrentAmount,
		Deadline:        c.Deadline,
		BeneficiaryType: c.BeneficiaryType,
		Status:          c.Status.String(),
		CreatedAt:       c.CreatedAt,
	}
}

// CampaignHandler holds dependencies for campaign-related handlers.
type CampaignHandler struct {
	uc     usecase.CampaignUsecase
	logger *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles opening a new campaign.
func (h *CampaignHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind campaign request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), &usecase.CreateCampaignInput{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		GoalAmount:      req.GoalAmount,
		Deadline:        req.Deadline,
		BeneficiaryType: req.BeneficiaryType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCampaignView(campaign), "Campaign created successfully")
}

// Get handles fetching one campaign.
func (h *CampaignHandler) Get(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	campaign, err := h.uc.GetCampaign(c.Request().Context(), campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignView(campaign), "Campaign retrieved successfully")
}

// List handles listing campaigns with optional status and category filters.
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.uc.ListCampaigns(c.Request().Context(), &usecase.ListCampaignsInput{
		Status:   entity.CampaignStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]campaignView, 0, len(campaigns))
	for _, campaign := range campaigns {
		views = append(views, newCampaignView(campaign))
	}

	return response.Success(c, http.StatusOK, views, "Campaigns retrieved successfully")
}

// Update handles modifying a campaign the caller owns.
func (h *CampaignHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind campaign update request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateCampaignInput{
		CampaignID:      campaignID,
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		GoalAmount:      req.GoalAmount,
		Deadline:        req.Deadline,
		BeneficiaryType: req.BeneficiaryType,
	}
	if req.Status != nil {
		status := entity.CampaignStatus(*req.Status)
		input.Status = &status
	}

	campaign, err := h.uc.UpdateCampaign(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignView(campaign), "Campaign updated successfully")
}

// Delete handles removing a campaign the caller owns.
func (h *CampaignHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	if err := h.uc.DeleteCampaign(c.Request().Context(), campaignID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": campaignID.String()}, "Campaign deleted successfully")
}
