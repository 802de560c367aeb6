package api

import (
	"net/http"
	"strconv"

	"coolschool-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateRecruit handles POST /api/recruits.
func (s *Server) CreateRecruit(c *gin.Context) {
	var req models.CreateRecruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dữ liệu không hợp lệ", "INVALID_BODY")
		return
	}

	recruit, err := s.recruits.Create(req)
	if err != nil {
		s.respondStoreError(c, err, "Không tìm thấy đăng ký tuyển sinh", "Lỗi khi tạo đăng ký tuyển sinh")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Đăng ký tuyển sinh thành công",
		Data:    recruit,
	})
}

// GetRecruits handles GET /api/recruits.
func (s *Server) GetRecruits(c *gin.Context) {
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

	result := s.recruits.GetAll(models.RecruitListOptions{
		Page:    page,
		Limit:   limit,
		Status:  c.Query("status"),
		Program: c.Query("program"),
		Search:  c.Query("search"),
	})

	c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Message:    "Lấy danh sách đăng ký thành công",
		Data:       result.Recruits,
		Pagination: result.Pagination,
	})
}

// GetRecruitByID handles GET /api/recruits/:id.
func (s *Server) GetRecruitByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c, "Không tìm thấy đăng ký tuyển sinh", "RECRUIT_NOT_FOUND")
		return
	}

	recruit, ok := s.recruits.GetByID(id)
	if !ok {
		notFound(c, "Không tìm thấy đăng ký tuyển sinh", "RECRUIT_NOT_FOUND")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lấy thông tin đăng ký thành công",
		Data:    recruit,
	})
}
