package api

import (
	"net/http"
	"strconv"

	"coolschool-backend/internal/logger"
	"coolschool-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateContact handles POST /api/contacts.
func (s *Server) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dữ liệu không hợp lệ", "INVALID_BODY")
		return
	}

	contact, err := s.contacts.Create(req)
	if err != nil {
		s.respondStoreError(c, err, "Không tìm thấy liên hệ", "Có lỗi xảy ra khi gửi liên hệ. Vui lòng thử lại sau.")
		return
	}

	logger.Log.WithFields(logger.Fields{
		"id":    contact.ID,
		"email": contact.Email,
	}).Info("contact created")

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Cảm ơn bạn đã liên hệ! Chúng tôi sẽ phản hồi trong thời gian sớm nhất.",
		Data: models.ContactCreated{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Subject:   contact.Subject,
			CreatedAt: contact.CreatedAt,
		},
	})
}

// GetContacts handles GET /api/contacts (admin listing).
func (s *Server) GetContacts(c *gin.Context) {
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

	result := s.contacts.GetAll(models.ContactListOptions{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Search: c.Query("search"),
	})

	c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Message:    "Lấy danh sách liên hệ thành công",
		Data:       result.Contacts,
		Pagination: result.Pagination,
	})
}

// GetContactStats handles GET /api/contacts/stats.
func (s *Server) GetContactStats(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lấy thống kê liên hệ thành công",
		Data:    s.contacts.Stats(),
	})
}

// GetContactByID handles GET /api/contacts/:id. A non-numeric id is a 400,
// unlike the news lookup.
func (s *Server) GetContactByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "ID không hợp lệ", "INVALID_ID")
		return
	}

	contact, ok := s.contacts.GetByID(id)
	if !ok {
		notFound(c, "Không tìm thấy liên hệ với ID này", "CONTACT_NOT_FOUND")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Lấy thông tin liên hệ thành công",
		Data:    contact,
	})
}

// UpdateContactStatus handles PUT /api/contacts/:id/status.
func (s *Server) UpdateContactStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "ID không hợp lệ", "INVALID_ID")
		return
	}

	var req models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dữ liệu không hợp lệ", "INVALID_BODY")
		return
	}

	contact, err := s.contacts.UpdateStatus(id, req.Status)
	if err != nil {
		s.respondStoreError(c, err, "Không tìm thấy liên hệ với ID này", "Có lỗi xảy ra khi cập nhật trạng thái")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cập nhật trạng thái thành công",
		Data:    contact,
	})
}

// DeleteContact handles DELETE /api/contacts/:id.
func (s *Server) DeleteContact(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "ID không hợp lệ", "INVALID_ID")
		return
	}

	if !s.contacts.DeleteByID(id) {
		notFound(c, "Không tìm thấy liên hệ với ID này", "CONTACT_NOT_FOUND")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Xóa liên hệ thành công",
	})
}
