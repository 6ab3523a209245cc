package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes
// for rule exports.
type Service struct {
	rulesRepo repository.RuleRepository
	techRepo  repository.TechnologyRepository
	logger    *slog.Logger
}

func NewService(rulesRepo repository.RuleRepository, techRepo repository.TechnologyRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rulesRepo: rulesRepo, techRepo: techRepo, logger: logger}
}

// ExportRulesXLSX returns a workbook with the technology's active
// rules, one sheet per rule type, ordered the way the store orders
// them.
func (s *Service) ExportRulesXLSX(ctx context.Context, technologyID uuid.UUID, ruleType *constants.RuleType) ([]byte, error) {
	start := time.Now()

	tech, err := s.techRepo.Get(ctx, technologyID)
	if err != nil {
		return nil, fmt.Errorf("load technology: %w", err)
	}

	recs, err := s.rulesRepo.List(ctx, &repository.ListRulesRequest{
		TechnologyID: technologyID,
		RuleType:     ruleType,
		ActiveOnly:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}

	f := excelize.NewFile()
	headers := []string{"#", "Title", "Content", "Severity", "Category"}

	sheetRows := map[string]int{}
	for _, rec := range recs {
		sheet := sheetName(rec.RuleType)
		row, seen := sheetRows[sheet]
		if !seen {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
			for i, h := range headers {
				cell, _ := excelize.CoordinatesToCellName(i+1, 1)
				_ = f.SetCellValue(sheet, cell, h)
			}
			_ = f.SetColWidth(sheet, "B", "B", 36)
			_ = f.SetColWidth(sheet, "C", "C", 72)
			row = 2
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, rec.OrderIndex)
		write(2, rec.Title)
		write(3, rec.Content)
		write(4, rec.Severity)
		write(5, rec.Category)

		sheetRows[sheet] = row + 1
	}

	// Drop the default sheet once real sheets exist.
	if len(sheetRows) > 0 {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"technology", tech.Name,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func sheetName(ruleType string) string {
	switch constants.RuleType(ruleType) {
	case constants.RuleTypeESD:
		return "ESD Rules"
	case constants.RuleTypeLatchup:
		return "Latchup Rules"
	default:
		return "General Rules"
	}
}
