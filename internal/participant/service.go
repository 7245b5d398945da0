package participant

// Service wraps the single repository call per operation.
type Service struct {
	Repo Repository
}

func NewService(r Repository) *Service {
	return &Service{Repo: r}
}

// ===========================
// 📄 List participants (optional enterprise equality filter)
func (s *Service) List(enterprise string) ([]Participant, error) {
	return s.Repo.GetAll(enterprise)
}

// ===========================
// 🔍 Get participant by ID
func (s *Service) Get(id uint) (*Participant, error) {
	return s.Repo.GetByID(id)
}

// ===========================
// 📄 List participants for one event
func (s *Service) ListByEvent(eventID uint) ([]Participant, error) {
	return s.Repo.GetByEventID(eventID)
}

// ===========================
// 🎯 Create participant
func (s *Service) Create(req *ParticipantRequest) (*Participant, error) {
	p := &Participant{
		Name:       req.Name,
		Enterprise: req.Enterprise,
		Email:      req.Email,
		Skills:     req.Skills,
		Photo:      req.Photo,
		EventID:    req.EventID,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ===========================
// 🛠 Update participant (all mutable columns replaced)
func (s *Service) Update(id uint, req *ParticipantRequest) (*Participant, error) {
	return s.Repo.Update(id, map[string]interface{}{
		"name":       req.Name,
		"enterprise": req.Enterprise,
		"email":      req.Email,
		"skills":     req.Skills,
		"photo":      req.Photo,
		"event_id":   req.EventID,
	})
}

// ===========================
// ❌ Delete participant
func (s *Service) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
