package participant

import (
	"errors"

	"gorm.io/gorm"
)

// Repository translates participant operations into parameterized queries.
// A zero-row result is a normal outcome (nil record / false), never an error.
type Repository interface {
	GetAll(enterprise string) ([]Participant, error)
	GetByID(id uint) (*Participant, error)
	GetByEventID(eventID uint) ([]Participant, error)
	Create(p *Participant) error
	Update(id uint, fields map[string]interface{}) (*Participant, error)
	Delete(id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 📄 List participants, optionally filtered by enterprise equality
func (r *repository) GetAll(enterprise string) ([]Participant, error) {
	var participants []Participant
	query := r.db
	if enterprise != "" {
		query = query.Where("enterprise = ?", enterprise)
	}
	err := query.Find(&participants).Error
	return participants, err
}

// ===========================
// 🔍 Get participant by ID
func (r *repository) GetByID(id uint) (*Participant, error) {
	var p Participant
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ===========================
// 📄 List participants registered for one event
func (r *repository) GetByEventID(eventID uint) ([]Participant, error) {
	var participants []Participant
	err := r.db.Where("event_id = ?", eventID).Find(&participants).Error
	return participants, err
}

// ===========================
// 🎯 Create participant
func (r *repository) Create(p *Participant) error {
	return r.db.Create(p).Error
}

// ===========================
// 🛠 Update participant (full-record replacement)
func (r *repository) Update(id uint, fields map[string]interface{}) (*Participant, error) {
	res := r.db.Model(&Participant{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var p Participant
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ===========================
// ❌ Delete participant
func (r *repository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&Participant{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
