package api

import (
	"errors"
	"net/http"

	"coolschool-backend/internal/config"
	"coolschool-backend/internal/logger"
	"coolschool-backend/internal/models"
	"coolschool-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	news     *store.NewsStore
	contacts *store.ContactStore
	recruits *store.RecruitStore
	config   *config.Config
}

func NewServer(news *store.NewsStore, contacts *store.ContactStore, recruits *store.RecruitStore, cfg *config.Config) *Server {
	return &Server{
		news:     news,
		contacts: contacts,
		recruits: recruits,
		config:   cfg,
	}
}

// respondStoreError translates typed store failures into the envelope:
// validation -> 400 with the violation as message, not-found -> 404 with
// notFoundMsg, anything else -> 500 with serverMsg. Internal detail only
// leaks outside release mode.
func (s *Server) respondStoreError(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: verr.Error(),
			Error:   "VALIDATION_ERROR",
		})
		return
	}

	var nferr *store.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: notFoundMsg,
			Error:   "NOT_FOUND",
		})
		return
	}

	s.internalError(c, err, serverMsg)
}

func (s *Server) internalError(c *gin.Context, err error, serverMsg string) {
	logger.Log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")

	resp := models.Response{
		Success: false,
		Message: serverMsg,
		Error:   "INTERNAL_SERVER_ERROR",
	}
	if !s.config.IsRelease() && err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

func badRequest(c *gin.Context, message, code string) {
	c.JSON(http.StatusBadRequest, models.Response{
		Success: false,
		Message: message,
		Error:   code,
	})
}

func notFound(c *gin.Context, message, code string) {
	c.JSON(http.StatusNotFound, models.Response{
		Success: false,
		Message: message,
		Error:   code,
	})
}
