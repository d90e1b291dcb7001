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

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a campaign repository backed by PostgreSQL.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	m := campaignToModel(campaign)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create campaign")
	}

	campaign.CreatedAt = m.CreatedAt
	campaign.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var m model.CampaignModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return campaignToEntity(&m), nil
}

func (r *campaignRepository) List(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	var ms []model.CampaignModel

	query := r.db.WithContext(ctx).Model(&model.CampaignModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(ms))
	for i := range ms {
		campaigns = append(campaigns, campaignToEntity(&ms[i]))
	}

	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	m := campaignToModel(campaign)

	result := r.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]any{
			"title":            m.Title,
			"description":      m.Description,
			"category":         m.Category,
			"goal_amount":      m.GoalAmount,
			"deadline":         m.Deadline,
			"beneficiary_type": m.BeneficiaryType,
			"status":           m.Status,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CampaignModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

func (r *campaignRepository) AddDonationAmount(ctx context.Context, id uuid.UUID, amount int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", id).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", amount))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add donation amount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

func campaignToModel(c *entity.Campaign) *model.CampaignModel {
	return &model.CampaignModel{
		ID:              c.ID,
		UserID:          c.UserID,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		GoalAmount:      c.GoalAmount,
		CurrentAmount:   c.CurrentAmount,
		Deadline:        c.Deadline,
		BeneficiaryType: c.BeneficiaryType,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func campaignToEntity(m *model.CampaignModel) *entity.Campaign {
	return &entity.Campaign{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Description:     m.Description,
		Category:        m.Category,
		GoalAmount:      m.GoalAmount,
		CurrentAmount:   m.CurrentAmount,
		Deadline:        m.Deadline,
		BeneficiaryType: m.BeneficiaryType,
		Status:          entity.CampaignStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
