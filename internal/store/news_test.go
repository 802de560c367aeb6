package store

import (
	"testing"
	"time"

	"coolschool-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func newsFixture() []models.News {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.News{
		{
			ID: 1, Title: "Khai giảng năm học mới", Slug: "khai-giang-nam-hoc-moi",
			Description: "Thông báo khai giảng", Content: "Nội dung về lễ khai giảng",
			Status: "published", Category: "event",
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: 2, Title: "Chương trình tiếng Anh", Slug: "chuong-trinh-tieng-anh",
			Description: "Giới thiệu chương trình", Content: "Chi tiết chương trình tiếng Anh",
			Status: "published", Category: "program",
			CreatedAt: base.Add(24 * time.Hour), UpdatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: 3, Title: "Tin nội bộ", Slug: "tin-noi-bo",
			Description: "Bản nháp", Content: "Chưa công bố",
			Status: "draft", Category: "event",
			CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: 4, Title: "Hoạt động ngoại khóa", Slug: "hoat-dong-ngoai-khoa",
			Description: "Dã ngoại tháng ba", Content: "Kế hoạch dã ngoại",
			Status: "published", Category: "event",
			CreatedAt: base.Add(72 * time.Hour), UpdatedAt: base.Add(72 * time.Hour),
		},
	}
}

func newNewsTestStore(t *testing.T, records []models.News) (*NewsStore, *stubPersister[models.News]) {
	t.Helper()
	p := &stubPersister[models.News]{records: records}
	s, err := NewNewsStore(p)
	require.NoError(t, err)
	return s, p
}

func TestNewsStoreSeedsWhenEmpty(t *testing.T) {
	s, p := newNewsTestStore(t, nil)

	result := s.FindAll(models.NewsListOptions{})
	require.Equal(t, 6, result.Pagination.TotalItems)
	require.Equal(t, 1, p.saves) // seed set written through

	created, err := s.Create(models.CreateNewsRequest{Title: "X", Description: "Y", Content: "Z"})
	require.NoError(t, err)
	require.Equal(t, 7, created.ID) // max existing id + 1
}

func TestNewsFindAllDefaultsToPublished(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	result := s.FindAll(models.NewsListOptions{})
	require.Equal(t, 3, result.Pagination.TotalItems)
	for _, n := range result.Data {
		require.Equal(t, "published", n.Status)
	}

	drafts := s.FindAll(models.NewsListOptions{Status: "draft"})
	require.Equal(t, 1, drafts.Pagination.TotalItems)
	require.Equal(t, "Tin nội bộ", drafts.Data[0].Title)
}

func TestNewsFindAllSortsNewestFirst(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	result := s.FindAll(models.NewsListOptions{})
	require.Equal(t, []int{4, 2, 1}, []int{result.Data[0].ID, result.Data[1].ID, result.Data[2].ID})
}

func TestNewsSortStableOnEqualCreatedAt(t *testing.T) {
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.News{
		{ID: 1, Title: "first", Status: "published", CreatedAt: ts},
		{ID: 2, Title: "second", Status: "published", CreatedAt: ts},
		{ID: 3, Title: "third", Status: "published", CreatedAt: ts},
	}
	s, _ := newNewsTestStore(t, records)

	result := s.FindAll(models.NewsListOptions{})
	require.Equal(t, []int{1, 2, 3}, []int{result.Data[0].ID, result.Data[1].ID, result.Data[2].ID})
}

func TestNewsFindAllPagination(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	page1 := s.FindAll(models.NewsListOptions{Page: 1, Limit: 2})
	require.Len(t, page1.Data, 2)
	require.Equal(t, 2, page1.Pagination.TotalPages)
	require.Equal(t, 3, page1.Pagination.TotalItems)
	require.Equal(t, 2, page1.Pagination.ItemsPerPage)

	page2 := s.FindAll(models.NewsListOptions{Page: 2, Limit: 2})
	require.Len(t, page2.Data, 1)

	// A page past the end is empty but keeps correct totals.
	page9 := s.FindAll(models.NewsListOptions{Page: 9, Limit: 2})
	require.Empty(t, page9.Data)
	require.Equal(t, 9, page9.Pagination.CurrentPage)
	require.Equal(t, 2, page9.Pagination.TotalPages)
	require.Equal(t, 3, page9.Pagination.TotalItems)
}

func TestNewsFindAllEmptyCollection(t *testing.T) {
	s, _ := newNewsTestStore(t, []models.News{{ID: 1, Status: "draft", Title: "x"}})

	result := s.FindAll(models.NewsListOptions{Status: "archived"})
	require.Empty(t, result.Data)
	require.Equal(t, 0, result.Pagination.TotalPages)
	require.Equal(t, 0, result.Pagination.TotalItems)
}

func TestNewsFindAllCategoryAndSearch(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	byCategory := s.FindAll(models.NewsListOptions{Category: "event"})
	require.Equal(t, 2, byCategory.Pagination.TotalItems)

	bySearch := s.FindAll(models.NewsListOptions{Search: "dã ngoại"})
	require.Equal(t, 1, bySearch.Pagination.TotalItems)
	require.Equal(t, 4, bySearch.Data[0].ID)

	both := s.FindAll(models.NewsListOptions{Category: "program", Search: "dã ngoại"})
	require.Zero(t, both.Pagination.TotalItems)
}

func TestNewsSearchRanking(t *testing.T) {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	records := []models.News{
		{
			ID: 1, Title: "Khác", Description: "Khác", Content: "montessori trong lớp học",
			Status: "published", CreatedAt: base.Add(72 * time.Hour),
		},
		{
			ID: 2, Title: "Phương pháp Montessori", Description: "Khác", Content: "Khác",
			Status: "published", CreatedAt: base,
		},
		{
			ID: 3, Title: "Khác", Description: "Giới thiệu Montessori", Content: "Khác",
			Status: "published", CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: 4, Title: "Montessori nâng cao", Description: "Khác", Content: "Khác",
			Status: "published", CreatedAt: base.Add(24 * time.Hour),
		},
	}
	s, _ := newNewsTestStore(t, records)

	result := s.Search("montessori", models.NewsListOptions{})

	// Title tier first (newest of the two title matches leads), then
	// description, then content-only - regardless of createdAt.
	ids := make([]int, 0, len(result.Data))
	for _, item := range result.Data {
		ids = append(ids, item.ID)
	}
	require.Equal(t, []int{4, 2, 3, 1}, ids)
	require.Equal(t, 4, result.SearchInfo.TotalMatches)
	require.Equal(t, "montessori", result.SearchInfo.Keyword)
}

func TestNewsSearchHighlightFields(t *testing.T) {
	records := []models.News{
		{
			ID: 1, Title: "Học phí 2024", Description: "Biểu học phí mới", Content: "Chi tiết học phí từng hệ",
			Status: "published", CreatedAt: time.Now(),
		},
		{
			ID: 2, Title: "Thông báo", Description: "Khác", Content: "học phí được giữ nguyên",
			Status: "published", CreatedAt: time.Now(),
		},
	}
	s, _ := newNewsTestStore(t, records)

	result := s.Search("Học Phí", models.NewsListOptions{})
	require.Len(t, result.Data, 2)

	require.Equal(t, 1, result.Data[0].ID)
	require.Equal(t, []string{"title", "description", "content"}, result.Data[0].SearchHighlight.FoundIn)
	require.Equal(t, "Học Phí", result.Data[0].SearchHighlight.Keyword)

	require.Equal(t, 2, result.Data[1].ID)
	require.Equal(t, []string{"content"}, result.Data[1].SearchHighlight.FoundIn)
}

func TestNewsSearchBlankKeyword(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	for _, keyword := range []string{"", "   "} {
		result := s.Search(keyword, models.NewsListOptions{Category: "event"})
		require.Empty(t, result.Data)
		require.Equal(t, 0, result.Pagination.TotalPages)
		require.Equal(t, 0, result.Pagination.TotalItems)
		require.Equal(t, 0, result.SearchInfo.TotalMatches)
	}
}

func TestNewsCreateDefaults(t *testing.T) {
	s, p := newNewsTestStore(t, newsFixture())

	created, err := s.Create(models.CreateNewsRequest{
		Title:       "Tuyển sinh đợt hè",
		Description: "Thông tin tuyển sinh",
		Content:     "Chi tiết tuyển sinh hè",
	})
	require.NoError(t, err)
	require.Equal(t, 5, created.ID)
	require.Equal(t, "tuyen-sinh-dot-he", created.Slug)
	require.Equal(t, "published", created.Status)
	require.Equal(t, "program", created.Category)
	require.Equal(t, "Cool Team", created.Author)
	require.Equal(t, time.Now().Format("2006-01-02"), created.Date)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)
	require.Equal(t, 1, p.saves)

	fetched, err := s.FindBySlug("tuyen-sinh-dot-he")
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
}

func TestNewsCreateMissingFields(t *testing.T) {
	s, p := newNewsTestStore(t, newsFixture())

	_, err := s.Create(models.CreateNewsRequest{Title: "  ", Content: "C"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "title, description", verr.Field)
	require.Zero(t, p.saves)
}

func TestNewsUpdatePartialMerge(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	before, err := s.FindByID(1)
	require.NoError(t, err)

	title := "Khai giảng (cập nhật)"
	updated, err := s.Update(1, models.UpdateNewsRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, before.Description, updated.Description)
	require.Equal(t, before.Content, updated.Content)
	require.Equal(t, before.Slug, updated.Slug)
	require.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	require.True(t, updated.CreatedAt.Equal(before.CreatedAt))
}

func TestNewsUpdateNotFound(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	title := "x"
	_, err := s.Update(99, models.UpdateNewsRequest{Title: &title})
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestNewsDelete(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	deleted, err := s.Delete(2)
	require.NoError(t, err)
	require.Equal(t, 2, deleted.ID)

	_, err = s.FindByID(2)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)

	before := s.FindAll(models.NewsListOptions{}).Pagination.TotalItems
	_, err = s.Delete(2)
	require.ErrorAs(t, err, &nferr)
	require.Equal(t, before, s.FindAll(models.NewsListOptions{}).Pagination.TotalItems)
}

func TestNewsCategories(t *testing.T) {
	s, _ := newNewsTestStore(t, newsFixture())

	// Distinct, first-seen order, drafts included.
	require.Equal(t, []string{"event", "program"}, s.Categories())
}

func TestNewsPersistFailureKeepsState(t *testing.T) {
	p := &stubPersister[models.News]{records: newsFixture(), failSave: true}
	s, err := NewNewsStore(p)
	require.NoError(t, err)

	created, err := s.Create(models.CreateNewsRequest{Title: "T", Description: "D", Content: "C"})
	require.NoError(t, err)

	fetched, err := s.FindByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "T", fetched.Title)
}
