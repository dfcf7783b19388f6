package models

// ContentIdea is a single AI-suggested content topic.
type ContentIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Draft is a generated post draft.
type Draft struct {
	Draft string `json:"draft"`
}

// EngagementBooster holds pre-upload optimization strategies for one item.
type EngagementBooster struct {
	ViewsTips    string `json:"viewsTips"`
	LikesTips    string `json:"likesTips"`
	CommentsTips string `json:"commentsTips"`
}

// VisualIdeas holds asset production suggestions.
type VisualIdeas struct {
	ImageIdeas []string `json:"imageIdeas"`
	VideoIdea  string   `json:"videoIdea"`
}

// StrategyIdea is one entry of a forward-looking content plan.
type StrategyIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reasoning   string `json:"reasoning"`
}

// EngagementInsight is one recommendation from the portfolio-wide analysis.
type EngagementInsight struct {
	Target     string `json:"target"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// EngagementOptimization holds per-channel tips for a content draft.
type EngagementOptimization struct {
	ForViews    string `json:"forViews"`
	ForLikes    string `json:"forLikes"`
	ForComments string `json:"forComments"`
}

// PreUploadTips holds one tip per engagement dimension for an upcoming item.
type PreUploadTips struct {
	ViewsTip    string `json:"viewsTip"`
	LikesTip    string `json:"likesTip"`
	CommentsTip string `json:"commentsTip"`
}

// Recommendation type values.
const (
	RecommendationImprovement = "improvement"
	RecommendationMissing     = "missing"
	RecommendationTask        = "task"
)

// Recommendation priority values.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is an advisory item for a single piece of content.
type Recommendation struct {
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}
