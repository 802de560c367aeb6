package api

import (
	"coolschool-backend/internal/config"
	"coolschool-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, news *store.NewsStore, contacts *store.ContactStore, recruits *store.RecruitStore, cfg *config.Config) {
	server := NewServer(news, contacts, recruits, cfg)

	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(Metrics())
	router.Use(CORSSpecific(cfg.GetCORSOrigins()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "coolschool-backend",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		newsGroup := api.Group("/news")
		{
			newsGroup.GET("", server.GetNews)
			newsGroup.GET("/search", server.SearchNews)
			newsGroup.GET("/categories", server.GetCategories)
			newsGroup.GET("/slug/:slug", server.GetNewsBySlug)
			newsGroup.GET("/:id", server.GetNewsByID)
			newsGroup.POST("", server.CreateNews)
			newsGroup.PUT("/:id", server.UpdateNews)
			newsGroup.DELETE("/:id", server.DeleteNews)
		}

		contactGroup := api.Group("/contacts")
		{
			contactGroup.POST("", server.CreateContact)
			contactGroup.GET("", server.GetContacts)
			contactGroup.GET("/stats", server.GetContactStats)
			contactGroup.GET("/:id", server.GetContactByID)
			contactGroup.PUT("/:id/status", server.UpdateContactStatus)
			contactGroup.DELETE("/:id", server.DeleteContact)
		}

		recruitGroup := api.Group("/recruits")
		{
			recruitGroup.POST("", server.CreateRecruit)
			recruitGroup.GET("", server.GetRecruits)
			recruitGroup.GET("/:id", server.GetRecruitByID)
		}
	}
}
