package event

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when the submitted date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date format. Use YYYY-MM-DD")

// Service wraps request parsing and the single repository call per operation.
type Service struct {
	Repo Repository
}

func NewService(r Repository) *Service {
	return &Service{Repo: r}
}

// ===========================
// 📄 List all events
func (s *Service) List() ([]Event, error) {
	return s.Repo.GetAll()
}

// ===========================
// 🔍 Get event by ID
func (s *Service) Get(id uint) (*Event, error) {
	return s.Repo.GetByID(id)
}

// ===========================
// 🎯 Create event
func (s *Service) Create(req *CreateEventRequest) (*Event, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	e := &Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
	}
	if err := s.Repo.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// ===========================
// 🛠 Update event (all mutable columns replaced)
func (s *Service) Update(id uint, req *UpdateEventRequest) (*Event, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return s.Repo.Update(id, map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"date":        date,
		"location":    req.Location,
	})
}

// ===========================
// ❌ Delete event
func (s *Service) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
