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

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a donation repository backed by PostgreSQL.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	m := donationToModel(donation)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampaignNotFound
		}

		return errors.Wrap(err, "failed to create donation")
	}

	donation.CreatedAt = m.CreatedAt

	return nil
}

func (r *donationRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Donation, error) {
	var ms []model.DonationModel

	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	donations := make([]*entity.Donation, 0, len(ms))
	for i := range ms {
		donations = append(donations, donationToEntity(&ms[i]))
	}

	return donations, nil
}

// userDonationRow carries a donation row plus the joined campaign title.
type userDonationRow struct {
	model.DonationModel
	CampaignTitle string `gorm:"column:campaign_title"`
}

func (r *donationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDonation, error) {
	var rows []userDonationRow

	err := r.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Select("donations.*, campaigns.title AS campaign_title").
		Joins("JOIN campaigns ON campaigns.id = donations.campaign_id").
		Where("donations.user_id = ?", userID).
		Order("donations.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations by user")
	}

	donations := make([]*entity.UserDonation, 0, len(rows))
	for i := range rows {
		donations = append(donations, &entity.UserDonation{
			Donation:      *donationToEntity(&rows[i].DonationModel),
			CampaignTitle: rows[i].CampaignTitle,
		})
	}

	return donations, nil
}

// leaderboardLimit caps the donor leaderboard at the top ten donors.
const leaderboardLimit = 10

// donorNameExpr pools anonymous donations under one name at the SQL level so
// the grouping never exposes who gave anonymously.
const donorNameExpr = "CASE WHEN donations.anonymous THEN 'Anonymous' ELSE users.full_name END"

type leaderboardRow struct {
	DonorName     string `gorm:"column:donor_name"`
	TotalDonated  int64  `gorm:"column:total_donated"`
	DonationCount int64  `gorm:"column:donation_count"`
}

func (r *donationRepository) Leaderboard(ctx context.Context, filter repository.LeaderboardFilter) ([]*entity.LeaderboardEntry, error) {
	query := r.db.WithContext(ctx).
		Model(&model.DonationModel{}).
		Select(donorNameExpr + " AS donor_name, SUM(donations.amount) AS total_donated, COUNT(donations.id) AS donation_count").
		Joins("LEFT JOIN users ON users.id = donations.user_id").
		Joins("JOIN campaigns ON campaigns.id = donations.campaign_id")

	if !filter.Since.IsZero() {
		query = query.Where("donations.created_at >= ?", filter.Since)
	}
	if filter.Category != "" {
		query = query.Where("campaigns.category = ?", filter.Category)
	}

	var rows []leaderboardRow

	err := query.
		Group(donorNameExpr).
		Order("total_donated DESC").
		Limit(leaderboardLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate donation leaderboard")
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, &entity.LeaderboardEntry{
			DonorName:     rows[i].DonorName,
			TotalDonated:  rows[i].TotalDonated,
			DonationCount: rows[i].DonationCount,
		})
	}

	return entries, nil
}

func donationToModel(d *entity.Donation) *model.DonationModel {
	return &model.DonationModel{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		PaymentStatus: string(d.PaymentStatus),
		Anonymous:     d.Anonymous,
		Message:       d.Message,
		CreatedAt:     d.CreatedAt,
	}
}

func donationToEntity(m *model.DonationModel) *entity.Donation {
	return &entity.Donation{
		ID:            m.ID,
		CampaignID:    m.CampaignID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		Anonymous:     m.Anonymous,
		Message:       m.Message,
		CreatedAt:     m.CreatedAt,
	}
}
