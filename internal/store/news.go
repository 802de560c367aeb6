package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"coolschool-backend/internal/models"
	"coolschool-backend/internal/slug"
)

const DefaultNewsLimit = 6

// NewsStore owns the news collection. Listings default to published
// articles; drafts and archived items are only visible when asked for
// explicitly.
type NewsStore struct {
	mu      sync.Mutex
	news    []models.News
	nextID  int
	persist Persister[models.News]
}

// NewNewsStore loads the collection from the persister, seeding the
// initial set of articles when the backing store is empty.
func NewNewsStore(p Persister[models.News]) (*NewsStore, error) {
	records, err := p.Load()
	if err != nil {
		return nil, err
	}
	seeded := false
	if len(records) == 0 {
		records = seedNews()
		seeded = true
	}

	s := &NewsStore{
		news:    records,
		nextID:  nextID(records, func(n models.News) int { return n.ID }),
		persist: p,
	}
	if seeded {
		persistOrWarn(p, s.news, "news")
	}
	return s, nil
}

func nextID[T any](records []T, id func(T) int) int {
	max := 0
	for _, r := range records {
		if id(r) > max {
			max = id(r)
		}
	}
	return max + 1
}

// FindAll filters by status (default "published") and category, applies a
// plain substring search over title/description/content, sorts newest
// first and pages the result.
func (s *NewsStore) FindAll(opts models.NewsListOptions) models.NewsList {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultNewsLimit
	}
	if opts.Status == "" {
		opts.Status = "published"
	}

	filtered := make([]models.News, 0, len(s.news))
	for _, n := range s.news {
		if n.Status != opts.Status {
			continue
		}
		if opts.Category != "" && n.Category != opts.Category {
			continue
		}
		filtered = append(filtered, n)
	}

	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		matched := filtered[:0]
		for _, n := range filtered {
			if containsFold(n.Title, term) || containsFold(n.Description, term) || containsFold(n.Content, term) {
				matched = append(matched, n)
			}
		}
		filtered = matched
	}

	sortNewestFirst(filtered)

	return models.NewsList{
		Data: pageSlice(filtered, opts.Page, opts.Limit),
		Pagination: models.NewsPagination{
			CurrentPage:  opts.Page,
			TotalPages:   totalPages(len(filtered), opts.Limit),
			TotalItems:   len(filtered),
			ItemsPerPage: opts.Limit,
		},
	}
}

func (s *NewsStore) FindByID(id int) (models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.news {
		if n.ID == id {
			return n, nil
		}
	}
	return models.News{}, &NotFoundError{Resource: "news", Key: strconv.Itoa(id)}
}

func (s *NewsStore) FindBySlug(sl string) (models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.news {
		if n.Slug == sl {
			return n, nil
		}
	}
	return models.News{}, &NotFoundError{Resource: "news", Key: sl}
}

// Create validates the request, fills in the site defaults and assigns the
// next id. The slug derives from the title unless set later via Update.
func (s *NewsStore) Create(req models.CreateNewsRequest) (models.News, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", req.Title},
		{"description", req.Description},
		{"content", req.Content},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.News{}, &ValidationError{
			Reason: "Thiếu thông tin bắt buộc",
			Field:  strings.Join(missing, ", "),
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	n := models.News{
		ID:          s.nextID,
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Date:        now.Format("2006-01-02"),
		Author:      req.Author,
		Image:       req.Image,
		Description: req.Description,
		Content:     req.Content,
		Status:      "published",
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if n.Author == "" {
		n.Author = "Cool Team"
	}
	if n.Category == "" {
		n.Category = "program"
	}

	s.nextID++
	s.news = append(s.news, n)
	persistOrWarn(s.persist, s.news, "news")
	return n, nil
}

// Update merges the supplied fields onto the record and bumps updatedAt.
func (s *NewsStore) Update(id int, req models.UpdateNewsRequest) (models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.news {
		if s.news[i].ID != id {
			continue
		}
		n := &s.news[i]
		if req.Title != nil {
			n.Title = *req.Title
		}
		if req.Slug != nil {
			n.Slug = *req.Slug
		}
		if req.Date != nil {
			n.Date = *req.Date
		}
		if req.Author != nil {
			n.Author = *req.Author
		}
		if req.Image != nil {
			n.Image = *req.Image
		}
		if req.Description != nil {
			n.Description = *req.Description
		}
		if req.Content != nil {
			n.Content = *req.Content
		}
		if req.Status != nil {
			n.Status = *req.Status
		}
		if req.Category != nil {
			n.Category = *req.Category
		}
		n.UpdatedAt = time.Now()
		persistOrWarn(s.persist, s.news, "news")
		return *n, nil
	}
	return models.News{}, &NotFoundError{Resource: "news", Key: strconv.Itoa(id)}
}

func (s *NewsStore) Delete(id int) (models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.news {
		if n.ID == id {
			s.news = append(s.news[:i], s.news[i+1:]...)
			persistOrWarn(s.persist, s.news, "news")
			return n, nil
		}
	}
	return models.News{}, &NotFoundError{Resource: "news", Key: strconv.Itoa(id)}
}

// Categories returns the distinct categories in first-seen order.
func (s *NewsStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	categories := []string{}
	for _, n := range s.news {
		if !seen[n.Category] {
			seen[n.Category] = true
			categories = append(categories, n.Category)
		}
	}
	return categories
}

// Search ranks matches by where the keyword occurs: title hits first, then
// description, then content-only; ties inside a tier break newest first.
// A blank keyword yields an empty result with zero totals.
func (s *NewsStore) Search(keyword string, opts models.NewsListOptions) models.NewsSearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = DefaultNewsLimit
	}
	if opts.Status == "" {
		opts.Status = "published"
	}

	term := strings.ToLower(strings.TrimSpace(keyword))
	if term == "" {
		return models.NewsSearchResult{
			Data: []models.NewsSearchItem{},
			Pagination: models.NewsPagination{
				CurrentPage:  opts.Page,
				TotalPages:   0,
				TotalItems:   0,
				ItemsPerPage: opts.Limit,
			},
			SearchInfo: models.SearchInfo{Keyword: keyword, TotalMatches: 0},
		}
	}

	matches := []models.News{}
	for _, n := range s.news {
		if n.Status != opts.Status {
			continue
		}
		if opts.Category != "" && n.Category != opts.Category {
			continue
		}
		if containsFold(n.Title, term) || containsFold(n.Description, term) || containsFold(n.Content, term) {
			matches = append(matches, n)
		}
	}

	sortNewestFirst(matches)
	sort.SliceStable(matches, func(i, j int) bool {
		return searchTier(matches[i], term) < searchTier(matches[j], term)
	})

	page := pageSlice(matches, opts.Page, opts.Limit)
	items := make([]models.NewsSearchItem, 0, len(page))
	for _, n := range page {
		foundIn := []string{}
		if containsFold(n.Title, term) {
			foundIn = append(foundIn, "title")
		}
		if containsFold(n.Description, term) {
			foundIn = append(foundIn, "description")
		}
		if containsFold(n.Content, term) {
			foundIn = append(foundIn, "content")
		}
		items = append(items, models.NewsSearchItem{
			News:            n,
			SearchHighlight: models.SearchHighlight{Keyword: keyword, FoundIn: foundIn},
		})
	}

	return models.NewsSearchResult{
		Data: items,
		Pagination: models.NewsPagination{
			CurrentPage:  opts.Page,
			TotalPages:   totalPages(len(matches), opts.Limit),
			TotalItems:   len(matches),
			ItemsPerPage: opts.Limit,
		},
		SearchInfo: models.SearchInfo{Keyword: keyword, TotalMatches: len(matches)},
	}
}

// searchTier: 0 title match, 1 description match, 2 content only.
func searchTier(n models.News, term string) int {
	switch {
	case containsFold(n.Title, term):
		return 0
	case containsFold(n.Description, term):
		return 1
	default:
		return 2
	}
}

// containsFold reports whether term (already lower-cased) occurs in s.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

func sortNewestFirst(items []models.News) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
