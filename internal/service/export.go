package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Grocery List"
	exportURLTTL    = 15 * time.Minute
)

// ObjectStore uploads exports and hands out temporary download links
type ObjectStore interface {
	Upload(ctx context.Context, objectKey, contentType string, body []byte) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// Export is a rendered grocery list. URL is set only when the file was
// uploaded.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
	URL         string
}

// ExportService renders grocery lists to spreadsheets
type ExportService struct {
	store  ObjectStore
	logger *zap.Logger
}

// NewExportService creates an ExportService. store may be nil, in which case
// exports are only returned inline.
func NewExportService(store ObjectStore, logger *zap.Logger) *ExportService {
	return &ExportService{store: store, logger: logger}
}

// Export renders list and, when storage is configured and upload is set,
// stores it and attaches a presigned URL.
func (s *ExportService) Export(ctx context.Context, list *models.GroceryList, upload bool) (*Export, error) {
	data, err := RenderXLSX(list)
	if err != nil {
		return nil, err
	}

	out := &Export{
		FileName:    exportFileName(list),
		ContentType: xlsxContentType,
		Data:        data,
	}
	if !upload || s.store == nil {
		return out, nil
	}

	key := fmt.Sprintf("exports/%s/%s/%s", list.UserID, list.ID, out.FileName)
	if err := s.store.Upload(ctx, key, xlsxContentType, data); err != nil {
		return nil, err
	}
	url, err := s.store.GeneratePresignedURL(ctx, key, exportURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign export: %w", err)
	}
	out.URL = url

	s.logger.Info("grocery list exported",
		zap.String("list_id", list.ID.String()),
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)
	return out, nil
}

// RenderXLSX writes the list as one sheet: a row per item grouped under
// its category, categories in their sort order.
func RenderXLSX(list *models.GroceryList) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet: %w", err)
	}

	header := []interface{}{"Category", "Item", "Quantity", "Unit", "Amount", "Checked"}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	row := 2
	for _, group := range GroupItems(list) {
		for _, it := range group.Items {
			checked := ""
			if it.Checked {
				checked = "x"
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			values := []interface{}{
				group.Category.Name, it.Name, grocery.FormatQuantity(it.Quantity), it.Unit, it.Quantity, checked,
			}
			if err := sw.SetRow(cell, values); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ItemGroup is the items of one category
type ItemGroup struct {
	Category grocery.Category
	Items    []models.GroceryListItem
}

// GroupItems buckets a list's items by category in category sort order.
// Items whose category is unknown land in a trailing "Other" group. Empty
// categories are omitted.
func GroupItems(list *models.GroceryList) []ItemGroup {
	categories := append([]grocery.Category(nil), list.Categories...)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	index := make(map[string]int, len(categories))
	groups := make([]ItemGroup, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		groups[i].Category = c
	}
	orphans := ItemGroup{Category: grocery.Category{Name: grocery.CategoryOther, SortOrder: len(categories)}}

	for _, it := range list.Items {
		if i, ok := index[it.CategoryID]; ok {
			groups[i].Items = append(groups[i].Items, it)
		} else {
			orphans.Items = append(orphans.Items, it)
		}
	}

	out := make([]ItemGroup, 0, len(groups)+1)
	for _, g := range groups {
		if len(g.Items) > 0 {
			out = append(out, g)
		}
	}
	if len(orphans.Items) > 0 {
		out = append(out, orphans)
	}
	return out
}

func exportFileName(list *models.GroceryList) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, list.Name)
	if name == "" {
		name = "grocery-list"
	}
	return name + ".xlsx"
}
