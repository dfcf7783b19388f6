package services

import (
	"content-ops-platform/models"
)

// PlatformStats aggregates one platform's engagement columns.
type PlatformStats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// Summary is the derived dashboard view of one snapshot.
type Summary struct {
	TotalItems      int `json:"totalItems"`
	ProductionReady int `json:"productionReady"`
	Scheduled       int `json:"scheduled"`

	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`

	Platforms map[string]PlatformStats `json:"platforms"`

	ChartData    []models.ChartDataPoint `json:"chartData"`
	TopPerformer string                  `json:"topPerformer"`
}

// BuildSummary computes dashboard analytics from the current item list.
// Totals are summed from the sheet's total columns, not recomputed from
// the per-platform breakdowns.
func BuildSummary(items []models.ContentItem) Summary {
	summary := Summary{
		TotalItems: len(items),
		Platforms: map[string]PlatformStats{
			"facebook": {},
			"tiktok":   {},
			"telegram": {},
		},
		ChartData: make([]models.ChartDataPoint, 0, len(items)),
	}

	topViews := -1
	fb, tt, tg := PlatformStats{}, PlatformStats{}, PlatformStats{}

	for _, item := range items {
		if item.IsProductionReady() {
			summary.ProductionReady++
		}
		if item.IsScheduled() {
			summary.Scheduled++
		}

		summary.TotalViews += item.TotalViews
		summary.TotalLikes += item.TotalLikes
		summary.TotalComments += item.TotalComments

		fb.Views += item.FBViews
		fb.Likes += item.FBLikes
		fb.Comments += item.FBComments
		tt.Views += item.TTViews
		tt.Likes += item.TTLikes
		tt.Comments += item.TTComments
		tg.Views += item.TGViews
		tg.Likes += item.TGLikes
		tg.Comments += item.TGComments

		summary.ChartData = append(summary.ChartData, models.ChartDataPoint{
			Name:     item.Title,
			Likes:    item.TotalLikes,
			Views:    item.TotalViews,
			Comments: item.TotalComments,
		})

		if item.TotalViews > topViews {
			topViews = item.TotalViews
			summary.TopPerformer = item.Title
		}
	}

	summary.Platforms["facebook"] = fb
	summary.Platforms["tiktok"] = tt
	summary.Platforms["telegram"] = tg
	return summary
}
