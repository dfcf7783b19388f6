package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"content-ops-platform/models"
)

// Prompt builders for the assistant operations. Inputs are interpolated
// verbatim; every prompt carries the Myanmar-language directive, and
// structured operations state the exact JSON shape expected back.

func buildIdeasPrompt(theme string) string {
	return fmt.Sprintf(`Generate 5-10 content ideas based on the theme: "%s".
IMPORTANT: The response MUST be in Myanmar language (Burmese script).
Return only a JSON array of objects with "title" and "description".`, theme)
}

func buildDraftPrompt(title, description string) string {
	return fmt.Sprintf(`Write a complete, engaging social media post draft for:
Title: "%s"
Context: "%s"

The draft should include:
1. A powerful hook/intro
2. The main body with value/info
3. A clear call to action (CTA)
4. Relevant emojis

IMPORTANT: The response MUST be in Myanmar language (Burmese script).
Return a JSON object with a single key "draft" containing the full text.`, title, description)
}

func buildBoosterPrompt(item models.ContentItem, draftText string) string {
	if draftText == "" {
		draftText = "No draft yet"
	}
	return fmt.Sprintf(`Analyze this content for pre-upload engagement optimization:
Title: %s
Draft Text: %s
Existing Performance: Views: %d, Likes: %d, Comments: %d
Scheduled Platforms: %s

Provide 3 specific strategies in Myanmar language to improve performance BEFORE UPLOAD:
1. VIEWS: How to optimize the hook/thumbnail/headline for better reach.
2. LIKES: How to increase emotional resonance or value.
3. COMMENTS: A specific question or call-to-action to spark discussion.

Return a JSON object with "viewsTips", "likesTips", and "commentsTips".`,
		item.Title, draftText, item.TotalViews, item.TotalLikes, item.TotalComments,
		strings.Join(item.Platforms(), ", "))
}

func buildVisualIdeasPrompt(title, description string) string {
	return fmt.Sprintf(`Based on the content title: "%s" and description: "%s",
suggest creative visual ideas to produce assets for this post.
1. Suggest 2 specific IMAGE IDEAS (composition, style, what to show).
2. Suggest 1 short VIDEO IDEA (TikTok/Reels style script or visual hook).

IMPORTANT: The response MUST be in Myanmar language (Burmese script).
Return a JSON object with "imageIdeas" (array of strings) and "videoIdea" (string).`, title, description)
}

func buildStrategyPrompt(existingTitles []string, timeframe string) string {
	window := "NEXT MONTH (30 days)"
	if timeframe == "week" {
		window = "NEXT WEEK (7 days)"
	}
	return fmt.Sprintf(`You are a strategic content planner. Based on the following existing content titles: [%s],
suggest a strategic content plan for the %s.
Your goal is to suggest fresh, non-repetitive topics that complement the existing ones.
Provide 5 specific content ideas.
IMPORTANT: The response MUST be in Myanmar language (Burmese script).
Return only a JSON array of objects with "title", "description", and "reasoning" (why this is good for the strategy).`,
		strings.Join(existingTitles, ", "), window)
}

type engagementSummary struct {
	Title    string `json:"title"`
	Views    int    `json:"views"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

func buildGlobalAnalysisPrompt(items []models.ContentItem) string {
	summary := make([]engagementSummary, 0, len(items))
	for _, item := range items {
		summary = append(summary, engagementSummary{
			Title:    item.Title,
			Views:    item.TotalViews,
			Likes:    item.TotalLikes,
			Comments: item.TotalComments,
		})
	}
	data, _ := json.Marshal(summary)

	return fmt.Sprintf(`Analyze this engagement data: %s.
Identify underperforming content (low engagement rate) and provide 5 specific, actionable recommendations in Myanmar language to boost likes, views, and comments.
Focus on hooks, thumbnails, and calls to action.
Return a JSON array of objects with "target" (title or 'General'), "suggestion", and "priority" ('High' or 'Medium').`, data)
}

func buildOptimizePrompt(content string) string {
	return fmt.Sprintf(`Analyze this content draft for social media: "%s".
Provide specific tips in Myanmar language on how to improve this draft BEFORE PUBLISHING to maximize:
1. Views (e.g., keyword optimization, hook)
2. Likes (e.g., emotional connection, value)
3. Comments (e.g., call to action, asking questions)
Return a JSON object with keys "forViews", "forLikes", and "forComments", each being a string.`, content)
}

func buildPreUploadPrompt(item models.ContentItem) string {
	return fmt.Sprintf(`Analyze this specific upcoming content item:
Title: %s
Description: %s
Upcoming Platforms: %s
Upload Dates: FB:%s, TT:%s, TG:%s

Provide strategic engagement improvement tips in Myanmar language to be implemented BEFORE the upload date.
Suggest 1 specific tip for increasing VIEWS, 1 for LIKES, and 1 for COMMENTS.
Return a JSON object with keys "viewsTip", "likesTip", "commentsTip".`,
		item.Title, item.Description, platformNames(item),
		item.FBUploadDate, item.TTUploadDate, item.TGUploadDate)
}

// RefineMode selects the refinement flavor.
type RefineMode string

const (
	RefineHook     RefineMode = "hook"
	RefineRewrite  RefineMode = "rewrite"
	RefineHashtags RefineMode = "hashtags"
)

func buildRefinePrompt(content string, mode RefineMode) string {
	switch mode {
	case RefineHook:
		return fmt.Sprintf(`Write 3 catchy hooks in Myanmar language for this content: "%s"`, content)
	case RefineHashtags:
		return fmt.Sprintf(`Suggest relevant trending hashtags (can be English/Myanmar) for this content: "%s"`, content)
	default:
		return fmt.Sprintf(`Rewrite this content in Myanmar language to be more engaging and polished, including emojis: "%s"`, content)
	}
}

func buildRecommendationsPrompt(item models.ContentItem) string {
	return fmt.Sprintf(`Analyze this content status:
Title: %s
Description: %s
Text Ready: %s
Image Ready: %s
Video Ready: %s
Platforms: %s
Engagement: Likes:%d, Views:%d

Provide 3 specific task recommendations or improvements for this item in Myanmar language.
Return a JSON array of objects with "message", "type" (one of: 'improvement', 'missing', 'task'), and "priority" (one of: 'high', 'medium', 'low').`,
		item.Title, item.Description, yesNo(item.TextReady), yesNo(item.ImageReady), yesNo(item.VideoReady),
		strings.Join(item.Platforms(), ", "), item.TotalLikes, item.TotalViews)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func platformNames(item models.ContentItem) string {
	names := []string{}
	if item.Facebook {
		names = append(names, "Facebook")
	}
	if item.TikTok {
		names = append(names, "TikTok")
	}
	if item.Telegram {
		names = append(names, "Telegram")
	}
	return strings.Join(names, ", ")
}
