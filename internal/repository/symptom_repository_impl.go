package repository

import (
	"context"
	"errors"
	"time"

	"cycle-booking-service/internal/domain/entity"
	domainRepo "cycle-booking-service/internal/domain/repository"
	"cycle-booking-service/pkg/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type symptomRepository struct {
	db *gorm.DB
}

func NewSymptomRepository(db *gorm.DB) domainRepo.SymptomRepository {
	return &symptomRepository{db: db}
}

func (r *symptomRepository) Create(ctx context.Context, symptom *entity.Symptom) error {
	err := r.db.WithContext(ctx).Create(symptom).Error
	return translateNameError(err, symptomNameConstraint)
}

func (r *symptomRepository) Update(ctx context.Context, symptom *entity.Symptom) error {
	err := r.db.WithContext(ctx).Model(symptom).Update("name", symptom.Name).Error
	return translateNameError(err, symptomNameConstraint)
}

func (r *symptomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Symptom{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *symptomRepository) FindByID(ctx context.Context, id int64) (*entity.Symptom, error) {
	var symptom entity.Symptom
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&symptom).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &symptom, nil
}

func (r *symptomRepository) FindByIDs(ctx context.Context, ids []int64) ([]entity.Symptom, error) {
	var symptoms []entity.Symptom
	if len(ids) == 0 {
		return symptoms, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (r *symptomRepository) FindAll(ctx context.Context) ([]entity.Symptom, error) {
	var symptoms []entity.Symptom
	err := r.db.WithContext(ctx).Order("name ASC").Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (r *symptomRepository) CreateLogs(ctx context.Context, logs []entity.SymptomLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit("Symptom").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "symptom_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&logs).Error
}

func (r *symptomRepository) FindLogsByUser(ctx context.Context, userID uuid.UUID, from *time.Time) ([]entity.SymptomLog, error) {
	query := r.db.WithContext(ctx).Preload("Symptom").Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", calendar.FormatDate(*from))
	}

	var logs []entity.SymptomLog
	if err := query.Order("date DESC, symptom_id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

type menstrualFlowRepository struct {
	db *gorm.DB
}

func NewMenstrualFlowRepository(db *gorm.DB) domainRepo.MenstrualFlowRepository {
	return &menstrualFlowRepository{db: db}
}

func (r *menstrualFlowRepository) Create(ctx context.Context, flow *entity.MenstrualFlow) error {
	err := r.db.WithContext(ctx).Create(flow).Error
	return translateNameError(err, flowLabelConstraint)
}

func (r *menstrualFlowRepository) Update(ctx context.Context, flow *entity.MenstrualFlow) error {
	err := r.db.WithContext(ctx).Model(flow).Update("label", flow.Label).Error
	return translateNameError(err, flowLabelConstraint)
}

func (r *menstrualFlowRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.MenstrualFlow{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *menstrualFlowRepository) FindByID(ctx context.Context, id int64) (*entity.MenstrualFlow, error) {
	var flow entity.MenstrualFlow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&flow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flow, nil
}

func (r *menstrualFlowRepository) FindAll(ctx context.Context) ([]entity.MenstrualFlow, error) {
	var flows []entity.MenstrualFlow
	err := r.db.WithContext(ctx).Order("id ASC").Find(&flows).Error
	if err != nil {
		return nil, err
	}
	return flows, nil
}
