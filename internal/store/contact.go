package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"coolschool-backend/internal/models"
)

const (
	DefaultContactLimit = 10
	defaultSubject      = "Liên hệ từ website"
)

var contactStatuses = []string{
	models.ContactStatusNew,
	models.ContactStatusProcessing,
	models.ContactStatusResolved,
}

// ContactStore owns the contact-form inbox.
type ContactStore struct {
	mu       sync.Mutex
	contacts []models.Contact
	nextID   int
	persist  Persister[models.Contact]
}

func NewContactStore(p Persister[models.Contact]) (*ContactStore, error) {
	records, err := p.Load()
	if err != nil {
		return nil, err
	}
	seeded := false
	if len(records) == 0 {
		records = seedContacts()
		seeded = true
	}

	s := &ContactStore{
		contacts: records,
		nextID:   nextID(records, func(c models.Contact) int { return c.ID }),
		persist:  p,
	}
	if seeded {
		persistOrWarn(p, s.contacts, "contacts")
	}
	return s, nil
}

// Create validates and stores a submission. Email is normalized to
// lower-case; a missing subject gets the website placeholder.
func (s *ContactStore) Create(req models.CreateContactRequest) (models.Contact, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"body", req.Body},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.Contact{}, &ValidationError{
			Reason: "Thiếu thông tin bắt buộc",
			Field:  strings.Join(missing, ", "),
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validEmail(email) {
		return models.Contact{}, &ValidationError{Reason: "Email không hợp lệ"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := models.Contact{
		ID:        s.nextID,
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Body:      strings.TrimSpace(req.Body),
		Subject:   defaultSubject,
		Status:    models.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if subject := strings.TrimSpace(req.Subject); subject != "" {
		c.Subject = subject
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		c.Phone = &phone
	}

	s.nextID++
	s.contacts = append(s.contacts, c)
	persistOrWarn(s.persist, s.contacts, "contacts")
	return c, nil
}

// GetAll filters by status, searches over name/email/body, sorts newest
// first and pages the result.
func (s *ContactStore) GetAll(opts models.ContactListOptions) models.ContactList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultContactLimit
	}

	filtered := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if opts.Status != "" && c.Status != opts.Status {
			continue
		}
		filtered = append(filtered, c)
	}

	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		matched := filtered[:0]
		for _, c := range filtered {
			if containsFold(c.Name, term) || containsFold(c.Email, term) || containsFold(c.Body, term) {
				matched = append(matched, c)
			}
		}
		filtered = matched
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	pages := totalPages(len(filtered), opts.Limit)
	return models.ContactList{
		Contacts: pageSlice(filtered, opts.Page, opts.Limit),
		Pagination: models.ContactPagination{
			CurrentPage:   opts.Page,
			TotalPages:    pages,
			TotalContacts: len(filtered),
			Limit:         opts.Limit,
			HasNext:       opts.Page < pages,
			HasPrev:       opts.Page > 1,
		},
	}
}

// GetByID returns (contact, true) or (zero, false) when absent.
func (s *ContactStore) GetByID(id int) (models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// UpdateStatus moves a contact to one of new/processing/resolved. Any
// other value is a validation error and leaves the record untouched.
func (s *ContactStore) UpdateStatus(id int, status string) (models.Contact, error) {
	valid := false
	for _, st := range contactStatuses {
		if status == st {
			valid = true
			break
		}
	}
	if !valid {
		return models.Contact{}, &ValidationError{
			Reason: "Trạng thái không hợp lệ. Chỉ chấp nhận: " + strings.Join(contactStatuses, ", "),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		s.contacts[i].Status = status
		s.contacts[i].UpdatedAt = time.Now()
		persistOrWarn(s.persist, s.contacts, "contacts")
		return s.contacts[i], nil
	}
	return models.Contact{}, &NotFoundError{Resource: "contact", Key: strconv.Itoa(id)}
}

// DeleteByID removes a contact, reporting whether anything was removed.
func (s *ContactStore) DeleteByID(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.contacts {
		if c.ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			persistOrWarn(s.persist, s.contacts, "contacts")
			return true
		}
	}
	return false
}

// Stats counts the inbox per status in one pass.
func (s *ContactStore) Stats() models.ContactStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.ContactStats{Total: len(s.contacts)}
	for _, c := range s.contacts {
		switch c.Status {
		case models.ContactStatusNew:
			stats.New++
		case models.ContactStatusProcessing:
			stats.Processing++
		case models.ContactStatusResolved:
			stats.Resolved++
		}
	}
	return stats
}
