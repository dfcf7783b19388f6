package models

// ContentItem is one row of the content tracking sheet, normalized into a
// typed record. IDs are positional ("item-0", "item-1", ...) and only stable
// within a single ingestion cycle; a fresh fetch rebuilds the whole list.
type ContentItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Facebook    bool   `json:"facebook"`
	TikTok      bool   `json:"tiktok"`
	Telegram    bool   `json:"telegram"`
	Title       string `json:"title"`
	Description string `json:"description"`

	TextReady  bool `json:"textReady"`
	ImageReady bool `json:"imageReady"`
	VideoReady bool `json:"videoReady"`

	FBLikes    int `json:"fbLikes"`
	FBViews    int `json:"fbViews"`
	FBComments int `json:"fbComments"`
	TTLikes    int `json:"ttLikes"`
	TTViews    int `json:"ttViews"`
	TTComments int `json:"ttComments"`
	TGLikes    int `json:"tgLikes"`
	TGViews    int `json:"tgViews"`
	TGComments int `json:"tgComments"`

	// Totals come straight from the sheet. The sheet may count channels we
	// don't break out, so these are NOT validated against the per-platform
	// columns.
	TotalLikes    int `json:"totalLikes"`
	TotalViews    int `json:"totalViews"`
	TotalComments int `json:"totalComments"`

	FBUploadDate string `json:"fbUploadDate"`
	TTUploadDate string `json:"ttUploadDate"`
	TGUploadDate string `json:"tgUploadDate"`
}

// IsProductionReady reports whether all three asset flags are set.
func (ci *ContentItem) IsProductionReady() bool {
	return ci.TextReady && ci.ImageReady && ci.VideoReady
}

// IsScheduled reports whether at least one platform has an upload date.
func (ci *ContentItem) IsScheduled() bool {
	return ci.FBUploadDate != "" || ci.TTUploadDate != "" || ci.TGUploadDate != ""
}

// Platforms returns the short names of the platforms this item targets.
func (ci *ContentItem) Platforms() []string {
	platforms := []string{}
	if ci.Facebook {
		platforms = append(platforms, "FB")
	}
	if ci.TikTok {
		platforms = append(platforms, "TT")
	}
	if ci.Telegram {
		platforms = append(platforms, "TG")
	}
	return platforms
}

// ChartDataPoint is a per-item engagement sample for dashboard charts.
type ChartDataPoint struct {
	Name     string `json:"name"`
	Likes    int    `json:"likes"`
	Views    int    `json:"views"`
	Comments int    `json:"comments"`
}
