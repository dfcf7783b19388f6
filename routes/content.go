package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"content-ops-platform/internal/store"
	"content-ops-platform/services"
	"content-ops-platform/utils"
)

// SetupContentRoutes wires the content list, analytics, refresh, and
// export endpoints.
func SetupContentRoutes(router *gin.Engine, contentStore *store.ContentStore, refresher *services.RefreshService) {
	api := router.Group("/api")

	api.GET("/content", func(c *gin.Context) {
		snapshot := contentStore.Current()
		c.JSON(http.StatusOK, gin.H{
			"snapshot":   snapshot.ID,
			"generation": snapshot.Generation,
			"fetchedAt":  snapshot.FetchedAt,
			"items":      snapshot.Items,
			"status":     refresher.Status(),
		})
	})

	api.GET("/content/:id", func(c *gin.Context) {
		item, ok := contentStore.Item(c.Param("id"))
		if !ok {
			utils.RespondWithNotFound(c, "Content item not found")
			return
		}
		c.JSON(http.StatusOK, item)
	})

	api.POST("/content/refresh", func(c *gin.Context) {
		snapshot := refresher.Refresh(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"snapshot":   snapshot.ID,
			"generation": snapshot.Generation,
			"fetchedAt":  snapshot.FetchedAt,
			"itemCount":  len(snapshot.Items),
		})
	})

	api.GET("/analytics", func(c *gin.Context) {
		c.JSON(http.StatusOK, services.BuildSummary(contentStore.Items()))
	})

	api.GET("/export", func(c *gin.Context) {
		buf, err := services.ExportSnapshotXLSX(contentStore.Current())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to build export", gin.H{"error": err.Error()})
			return
		}

		filename := "content-tracker-" + time.Now().Format("2006-01-02") + ".xlsx"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			buf.Bytes())
	})
}
