package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"coolschool-backend/internal/models"
)

const DefaultRecruitLimit = 10

// RecruitStore owns the enrollment requests. Records are read-only after
// creation.
type RecruitStore struct {
	mu       sync.Mutex
	recruits []models.Recruit
	nextID   int
	persist  Persister[models.Recruit]
}

func NewRecruitStore(p Persister[models.Recruit]) (*RecruitStore, error) {
	records, err := p.Load()
	if err != nil {
		return nil, err
	}
	return &RecruitStore{
		recruits: records,
		nextID:   nextID(records, func(r models.Recruit) int { return r.ID }),
		persist:  p,
	}, nil
}

// Create validates an enrollment request. The parent phone must be 10-11
// digits once spaces and dashes are stripped; the email, when given, is
// normalized to lower-case.
func (s *RecruitStore) Create(req models.CreateRecruitRequest) (models.Recruit, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"parentName", req.ParentName},
		{"parentPhone", req.ParentPhone},
		{"childName", req.ChildName},
		{"childBirthdate", req.ChildBirthdate},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.Recruit{}, &ValidationError{
			Reason: "Thiếu thông tin bắt buộc",
			Field:  strings.Join(missing, ", "),
		}
	}

	if req.ParentEmail != "" && !validEmail(strings.TrimSpace(req.ParentEmail)) {
		return models.Recruit{}, &ValidationError{Reason: "Email không hợp lệ"}
	}
	if !validPhone(req.ParentPhone) {
		return models.Recruit{}, &ValidationError{Reason: "Số điện thoại không hợp lệ"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r := models.Recruit{
		ID:             s.nextID,
		ParentName:     strings.TrimSpace(req.ParentName),
		ParentPhone:    strings.TrimSpace(req.ParentPhone),
		ChildName:      strings.TrimSpace(req.ChildName),
		ChildBirthdate: req.ChildBirthdate,
		Status:         models.RecruitStatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if email := strings.ToLower(strings.TrimSpace(req.ParentEmail)); email != "" {
		r.ParentEmail = &email
	}
	if req.Program != "" {
		r.Program = &req.Program
	}
	if req.Schedule != "" {
		r.Schedule = &req.Schedule
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		r.Notes = &notes
	}

	s.nextID++
	s.recruits = append(s.recruits, r)
	persistOrWarn(s.persist, s.recruits, "recruits")
	return r, nil
}

// GetAll filters by status and program, searches over parent name, child
// name and parent email, sorts newest first and pages the result.
func (s *RecruitStore) GetAll(opts models.RecruitListOptions) models.RecruitList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultRecruitLimit
	}

	filtered := make([]models.Recruit, 0, len(s.recruits))
	for _, r := range s.recruits {
		if opts.Status != "" && r.Status != opts.Status {
			continue
		}
		if opts.Program != "" && (r.Program == nil || *r.Program != opts.Program) {
			continue
		}
		filtered = append(filtered, r)
	}

	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		matched := filtered[:0]
		for _, r := range filtered {
			if containsFold(r.ParentName, term) || containsFold(r.ChildName, term) ||
				(r.ParentEmail != nil && containsFold(*r.ParentEmail, term)) {
				matched = append(matched, r)
			}
		}
		filtered = matched
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	pages := totalPages(len(filtered), opts.Limit)
	return models.RecruitList{
		Recruits: pageSlice(filtered, opts.Page, opts.Limit),
		Pagination: models.RecruitPagination{
			CurrentPage:  opts.Page,
			TotalPages:   pages,
			TotalItems:   len(filtered),
			ItemsPerPage: opts.Limit,
			HasNextPage:  opts.Page < pages,
			HasPrevPage:  opts.Page > 1,
		},
	}
}

// GetByID returns (recruit, true) or (zero, false) when absent.
func (s *RecruitStore) GetByID(id int) (models.Recruit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recruits {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recruit{}, false
}
