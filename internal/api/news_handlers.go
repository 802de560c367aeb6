package api

import (
	"fmt"
	"net/http"
	"strconv"

	"coolschool-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// queryInt reads a positive integer query parameter, falling back to def
// when absent. A present but non-positive or non-numeric value is an
// error.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return v, nil
}

// GetNews handles GET /api/news.
func (s *Server) GetNews(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		badRequest(c, "Tham số phân trang không hợp lệ", "INVALID_PAGINATION")
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		badRequest(c, "Tham số phân trang không hợp lệ", "INVALID_PAGINATION")
		return
	}

	result := s.news.FindAll(models.NewsListOptions{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	})

	c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Message:    "Lấy danh sách tin tức thành công",
		Data:       result.Data,
		Pagination: result.Pagination,
	})
}

// GetNewsByID handles GET /api/news/:id. A non-numeric id matches nothing
// and reads as not found, mirroring the lookup-by-id contract.
func (s *Server) GetNewsByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Tin tức không tồn tại", "NEWS_NOT_FOUND")
		return
	}

	item, err := s.news.FindByID(id)
	if err != nil {
		s.respondStoreError(c, err, "Tin tức không tồn tại", "Lỗi server khi lấy tin tức")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lấy tin tức thành công",
		Data:    item,
	})
}

// GetNewsBySlug handles GET /api/news/slug/:slug.
func (s *Server) GetNewsBySlug(c *gin.Context) {
	item, err := s.news.FindBySlug(c.Param("slug"))
	if err != nil {
		s.respondStoreError(c, err, "Tin tức không tồn tại", "Lỗi server khi lấy tin tức")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lấy tin tức thành công",
		Data:    item,
	})
}

// SearchNews handles GET /api/news/search?keyword=.
func (s *Server) SearchNews(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		badRequest(c, "Từ khóa tìm kiếm là bắt buộc", "MISSING_KEYWORD")
		return
	}

	page, err := queryInt(c, "page", 1)
	if err != nil {
		badRequest(c, "Tham số phân trang không hợp lệ", "INVALID_PAGINATION")
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		badRequest(c, "Tham số phân trang không hợp lệ", "INVALID_PAGINATION")
		return
	}

	result := s.news.Search(keyword, models.NewsListOptions{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
	})

	message := fmt.Sprintf("Không tìm thấy kết quả nào cho từ khóa %q", keyword)
	if len(result.Data) > 0 {
		message = fmt.Sprintf("Tìm thấy %d kết quả cho từ khóa %q", result.SearchInfo.TotalMatches, keyword)
	}

	c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Message:    message,
		Data:       result.Data,
		Pagination: result.Pagination,
		SearchInfo: &result.SearchInfo,
	})
}

// GetCategories handles GET /api/news/categories.
func (s *Server) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lấy danh sách danh mục thành công",
		Data:    s.news.Categories(),
	})
}

// CreateNews handles POST /api/news.
func (s *Server) CreateNews(c *gin.Context) {
	var req models.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dữ liệu không hợp lệ", "INVALID_BODY")
		return
	}

	item, err := s.news.Create(req)
	if err != nil {
		s.respondStoreError(c, err, "Tin tức không tồn tại", "Lỗi server khi tạo tin tức")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Tạo tin tức thành công",
		Data:    item,
	})
}

// UpdateNews handles PUT /api/news/:id.
func (s *Server) UpdateNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Tin tức không tồn tại", "NEWS_NOT_FOUND")
		return
	}

	var req models.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dữ liệu không hợp lệ", "INVALID_BODY")
		return
	}

	item, err := s.news.Update(id, req)
	if err != nil {
		s.respondStoreError(c, err, "Tin tức không tồn tại", "Lỗi server khi cập nhật tin tức")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cập nhật tin tức thành công",
		Data:    item,
	})
}

// DeleteNews handles DELETE /api/news/:id. The removed record comes back
// in the response so admin screens can show what was deleted.
func (s *Server) DeleteNews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Tin tức không tồn tại", "NEWS_NOT_FOUND")
		return
	}

	item, err := s.news.Delete(id)
	if err != nil {
		s.respondStoreError(c, err, "Tin tức không tồn tại", "Lỗi server khi xóa tin tức")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Xóa tin tức thành công",
		Data:    item,
	})
}
