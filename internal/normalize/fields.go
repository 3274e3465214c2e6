package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GregMSThompson/bonuses-backend/internal/models"
	"github.com/GregMSThompson/bonuses-backend/pkg/helpers"
)

// Sheet columns A..H of the Entries tab.
const (
	colBrandName = iota
	colLogo
	colWelcomeBonus
	colBonusDetails
	colWager
	colMinDeposit
	colTrackingLink
	colTags
)

// Document maps a Firestore document to a Bonus. A truthy "id" field inside
// the document wins over the native document ID.
func Document(docID string, data map[string]any) models.Bonus {
	b := models.Bonus{
		ID:           stringOr(data["id"], docID),
		BrandName:    stringOr(data["brandName"], ""),
		Logo:         stringOr(data["logo"], ""),
		WelcomeBonus: stringOr(data["welcomeBonus"], ""),
		BonusDetails: stringOr(data["bonusDetails"], ""),
		Wager:        stringOr(data["wager"], ""),
		MinDeposit:   stringOr(data["minDeposit"], ""),
		TrackingLink: stringOr(data["trackingLink"], ""),
		Tags:         tagsFrom(data["tags"]),
	}
	if t := stringOr(data["type"], ""); t != "" {
		b.Type = helpers.Ptr(t)
	}
	return b
}

// Row maps one data row of the Entries tab to a Bonus. rowNumber is the
// 1-based sheet row and becomes the record ID.
func Row(rowNumber int, row []any) models.Bonus {
	return models.Bonus{
		ID:           strconv.Itoa(rowNumber),
		BrandName:    cell(row, colBrandName),
		Logo:         DriveLink(cell(row, colLogo)),
		WelcomeBonus: cell(row, colWelcomeBonus),
		BonusDetails: cell(row, colBonusDetails),
		Wager:        cell(row, colWager),
		MinDeposit:   cell(row, colMinDeposit),
		TrackingLink: cell(row, colTrackingLink),
		Tags:         ParseTags(cell(row, colTags)),
	}
}

// BlankRow reports whether the brand cell is empty. Such rows are trailing
// filler in the sheet and are skipped.
func BlankRow(row []any) bool {
	return cell(row, colBrandName) == ""
}

func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	return stringOr(row[i], "")
}

func tagsFrom(v any) []string {
	switch list := v.(type) {
	case []any:
		tags := make([]string, 0, len(list))
		for _, item := range list {
			if tag := strings.TrimSpace(stringOr(item, "")); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	case []string:
		tags := make([]string, 0, len(list))
		for _, item := range list {
			if tag := strings.TrimSpace(item); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	default:
		return ParseTags(stringOr(v, ""))
	}
}

// stringOr returns v as a string when it is truthy, otherwise fallback.
// Empty strings, zero numbers and false count as absent.
func stringOr(v any, fallback string) string {
	if !truthy(v) {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}
