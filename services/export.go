package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"content-ops-platform/internal/store"
)

var exportHeaders = []string{
	"ID", "Date", "Title", "Description",
	"Facebook", "TikTok", "Telegram",
	"Text Ready", "Image Ready", "Video Ready",
	"FB Views", "FB Likes", "FB Comments",
	"TT Views", "TT Likes", "TT Comments",
	"TG Views", "TG Likes", "TG Comments",
	"Total Views", "Total Likes", "Total Comments",
	"FB Upload Date", "TT Upload Date", "TG Upload Date",
}

// ExportSnapshotXLSX renders the current snapshot plus its analytics
// summary as an Excel workbook.
func ExportSnapshotXLSX(snapshot store.Snapshot) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const itemsSheet = "Content"
	f.SetSheetName("Sheet1", itemsSheet)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(itemsSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, item := range snapshot.Items {
		row := []interface{}{
			item.ID, item.Date, item.Title, item.Description,
			item.Facebook, item.TikTok, item.Telegram,
			item.TextReady, item.ImageReady, item.VideoReady,
			item.FBViews, item.FBLikes, item.FBComments,
			item.TTViews, item.TTLikes, item.TTComments,
			item.TGViews, item.TGLikes, item.TGComments,
			item.TotalViews, item.TotalLikes, item.TotalComments,
			item.FBUploadDate, item.TTUploadDate, item.TGUploadDate,
		}
		startCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(itemsSheet, startCell, &row); err != nil {
			return nil, err
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	summary := BuildSummary(snapshot.Items)
	rows := [][]interface{}{
		{"Snapshot", snapshot.ID},
		{"Fetched At", snapshot.FetchedAt.Format("2006-01-02 15:04:05 MST")},
		{"Total Items", summary.TotalItems},
		{"Production Ready", summary.ProductionReady},
		{"Scheduled", summary.Scheduled},
		{"Total Views", summary.TotalViews},
		{"Total Likes", summary.TotalLikes},
		{"Total Comments", summary.TotalComments},
		{"Top Performer", summary.TopPerformer},
	}
	for _, platform := range []struct {
		name string
		key  string
	}{{"Facebook", "facebook"}, {"TikTok", "tiktok"}, {"Telegram", "telegram"}} {
		stats := summary.Platforms[platform.key]
		rows = append(rows, []interface{}{
			platform.name + " (views/likes/comments)",
			fmt.Sprintf("%d / %d / %d", stats.Views, stats.Likes, stats.Comments),
		})
	}

	for i, row := range rows {
		startCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, startCell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
