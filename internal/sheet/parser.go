package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"content-ops-platform/models"
)

// RowParser splits one line of the sheet export into cells. The default
// implementation is a plain separator split with no quoted-field support;
// a stricter parser can be swapped in without touching the field mapping.
type RowParser interface {
	ParseRow(line string) []string
}

// CommaRowParser splits on the comma separator. A cell value that itself
// contains a comma will misalign the rest of its row. Known limitation of
// the sheet export we consume.
type CommaRowParser struct{}

func (CommaRowParser) ParseRow(line string) []string {
	return strings.Split(line, ",")
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

// ParseItems turns the raw export text into content items. The first
// non-empty line is the header; recognized columns are matched by exact
// header text, unrecognized ones are ignored, missing ones default every
// field to empty/0/false.
func ParseItems(text string, rp RowParser) []models.ContentItem {
	lines := splitLines(text)
	if len(lines) == 0 {
		return []models.ContentItem{}
	}

	headers := map[string]int{}
	for i, h := range rp.ParseRow(lines[0]) {
		name := strings.TrimSpace(h)
		if _, seen := headers[name]; !seen {
			headers[name] = i
		}
	}

	items := make([]models.ContentItem, 0, len(lines)-1)
	for idx, line := range lines[1:] {
		values := rp.ParseRow(line)
		getVal := func(header string) string {
			i, ok := headers[header]
			if !ok || i >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[i])
		}

		items = append(items, models.ContentItem{
			ID:          fmt.Sprintf("item-%d", idx),
			Date:        getVal("Date"),
			Facebook:    parseBool(getVal("Facebook")),
			TikTok:      parseBool(getVal("TikTok")),
			Telegram:    parseBool(getVal("Telegram")),
			Title:       getVal("Title"),
			Description: getVal("Content Description"),

			TextReady:  parseBool(getVal("Text Ready")),
			ImageReady: parseBool(getVal("Image Ready")),
			VideoReady: parseBool(getVal("Video Ready")),

			FBLikes:    parseNum(getVal("FB Likes")),
			FBViews:    parseNum(getVal("FB Views")),
			FBComments: parseNum(getVal("FB Comments")),
			TTLikes:    parseNum(getVal("TT Likes")),
			TTViews:    parseNum(getVal("TT Views")),
			TTComments: parseNum(getVal("TT Comments")),
			TGLikes:    parseNum(getVal("TG Likes")),
			TGViews:    parseNum(getVal("TG Views")),
			TGComments: parseNum(getVal("TG Comments")),

			TotalLikes:    parseNum(getVal("Total Likes")),
			TotalViews:    parseNum(getVal("Total Views")),
			TotalComments: parseNum(getVal("Total Comments")),

			FBUploadDate: getVal("FB Upload Date"),
			TTUploadDate: getVal("TT Upload Date"),
			TGUploadDate: getVal("TG Upload Date"),
		})
	}
	return items
}

// splitLines splits on CRLF or LF and drops blank lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// parseBool matches the sheet's affirmative token; anything else is false.
func parseBool(val string) bool {
	return strings.EqualFold(val, "yes")
}

// parseNum strips everything that is not a digit, then parses. Malformed
// or empty cells yield 0, never an error.
func parseNum(val string) int {
	digits := nonDigit.ReplaceAllString(val, "")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
