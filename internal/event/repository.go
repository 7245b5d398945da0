package event

import (
	"errors"

	"gorm.io/gorm"
)

// Repository translates event operations into parameterized queries.
// A zero-row result is a normal outcome (nil record / false), never an error.
type Repository interface {
	GetAll() ([]Event, error)
	GetByID(id uint) (*Event, error)
	Create(e *Event) error
	Update(id uint, fields map[string]interface{}) (*Event, error)
	Delete(id uint) (bool, error)
	GetWithParticipantCount() ([]EventWithCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 📄 List all events
func (r *repository) GetAll() ([]Event, error) {
	var events []Event
	err := r.db.Find(&events).Error
	return events, err
}

// ===========================
// 🔍 Get event by ID
func (r *repository) GetByID(id uint) (*Event, error) {
	var e Event
	err := r.db.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 🎯 Create event
func (r *repository) Create(e *Event) error {
	return r.db.Create(e).Error
}

// ===========================
// 🛠 Update event (full-record replacement)
func (r *repository) Update(id uint, fields map[string]interface{}) (*Event, error) {
	res := r.db.Model(&Event{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var e Event
	if err := r.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// ❌ Delete event
func (r *repository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&Event{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ===========================
// 🔢 Events with participant count (LEFT JOIN, zero-participant events kept)
func (r *repository) GetWithParticipantCount() ([]EventWithCount, error) {
	var out []EventWithCount
	err := r.db.Table("events e").
		Select(`
			e.id,
			e.name,
			e.description,
			e.date,
			e.location,
			COUNT(p.id) AS participants_count
		`).
		Joins("LEFT JOIN participants p ON p.event_id = e.id").
		Group("e.id").
		Order("e.date ASC").
		Scan(&out).Error
	return out, err
}
