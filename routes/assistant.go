package routes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-ops-platform/internal/store"
	"content-ops-platform/services"
	"content-ops-platform/utils"
)

// SetupAssistantRoutes wires one endpoint per assistant operation.
// Item-scoped operations resolve the item from the current snapshot and
// cache their result per snapshot generation, so a fresh ingestion cycle
// naturally invalidates stale advice.
func SetupAssistantRoutes(router *gin.Engine, assistant *services.AssistantService, contentStore *store.ContentStore, cache *services.ResultCache) {
	api := router.Group("/api/assistant")

	api.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"available": assistant.Available()})
	})

	api.POST("/ideas", func(c *gin.Context) {
		// theme validation (including empty) belongs to the service, so a
		// missing body falls through as an empty theme
		var req struct {
			Theme string `json:"theme"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		ideas, err := assistant.GenerateIdeas(c.Request.Context(), req.Theme)
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ideas": ideas})
	})

	api.POST("/draft", func(c *gin.Context) {
		var req struct {
			Title       string `json:"title" binding:"required"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		draft, err := assistant.GenerateDraft(c.Request.Context(), req.Title, req.Description)
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, draft)
	})

	api.POST("/visual-ideas", func(c *gin.Context) {
		var req struct {
			Title       string `json:"title" binding:"required"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		ideas, err := assistant.GenerateVisualIdeas(c.Request.Context(), req.Title, req.Description)
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, ideas)
	})

	api.POST("/strategy", func(c *gin.Context) {
		var req struct {
			Timeframe string `json:"timeframe" binding:"required,oneof=week month"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		titles := []string{}
		for _, item := range contentStore.Items() {
			titles = append(titles, item.Title)
		}

		key := services.CacheKey("strategy", contentStore.Generation(), req.Timeframe)
		data, err := cache.Do(c.Request.Context(), "future_strategy", key, func() (interface{}, error) {
			return assistant.GenerateFutureStrategy(c.Request.Context(), titles, req.Timeframe)
		})
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})

	api.POST("/analysis", func(c *gin.Context) {
		key := services.CacheKey("analysis", contentStore.Generation())
		data, err := cache.Do(c.Request.Context(), "global_analysis", key, func() (interface{}, error) {
			return assistant.GetGlobalEngagementAnalysis(c.Request.Context(), contentStore.Items())
		})
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})

	api.POST("/optimize", func(c *gin.Context) {
		var req struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		opt, err := assistant.OptimizeEngagement(c.Request.Context(), req.Content)
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, opt)
	})

	api.POST("/refine", func(c *gin.Context) {
		var req struct {
			Content string `json:"content" binding:"required"`
			Mode    string `json:"mode" binding:"omitempty,oneof=hook rewrite hashtags"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}
		if req.Mode == "" {
			req.Mode = string(services.RefineRewrite)
		}

		refined, err := assistant.RefineContent(c.Request.Context(), req.Content, services.RefineMode(req.Mode))
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"refined": refined})
	})

	// Item-scoped operations

	api.POST("/items/:id/booster", func(c *gin.Context) {
		item, ok := contentStore.Item(c.Param("id"))
		if !ok {
			utils.RespondWithNotFound(c, "Content item not found")
			return
		}

		// draft is optional, and so is the request body itself
		var req struct {
			Draft string `json:"draft"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			utils.RespondWithBadRequest(c, "Invalid request data", gin.H{"error": err.Error()})
			return
		}

		key := services.CacheKey("booster", contentStore.Generation(), item.ID, req.Draft)
		data, err := cache.Do(c.Request.Context(), "engagement_booster", key, func() (interface{}, error) {
			return assistant.GetEngagementBooster(c.Request.Context(), item, req.Draft)
		})
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})

	api.POST("/items/:id/tips", func(c *gin.Context) {
		item, ok := contentStore.Item(c.Param("id"))
		if !ok {
			utils.RespondWithNotFound(c, "Content item not found")
			return
		}

		key := services.CacheKey("tips", contentStore.Generation(), item.ID)
		data, err := cache.Do(c.Request.Context(), "pre_upload_tips", key, func() (interface{}, error) {
			return assistant.GetPreUploadTips(c.Request.Context(), item)
		})
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})

	api.POST("/items/:id/recommendations", func(c *gin.Context) {
		item, ok := contentStore.Item(c.Param("id"))
		if !ok {
			utils.RespondWithNotFound(c, "Content item not found")
			return
		}

		key := services.CacheKey("recommendations", contentStore.Generation(), item.ID)
		data, err := cache.Do(c.Request.Context(), "recommendations", key, func() (interface{}, error) {
			return assistant.GetRecommendations(c.Request.Context(), item)
		})
		if err != nil {
			utils.RespondWithServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	})
}
