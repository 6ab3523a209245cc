package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/repository"
)

var dbSeq int

func newTestService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:export_test_%d?mode=memory&cache=shared", dbSeq)
	client, err := repository.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.Default()
	svc := NewService(
		repository.NewRuleRepository(client, logger),
		repository.NewTechnologyRepository(client, logger),
		logger,
	)
	return svc, client
}

func seedRule(t *testing.T, client *ent.Client, techID uuid.UUID, ruleType, title string, orderIndex int, active bool) {
	t.Helper()
	_, err := client.Rule.Create().
		SetTechnologyID(techID).
		SetRuleType(ruleType).
		SetTitle(title).
		SetContent("Content for " + title).
		SetSeverity(string(constants.SeverityCritical)).
		SetOrderIndex(orderIndex).
		SetIsActive(active).
		Save(context.Background())
	require.NoError(t, err)
}

func TestExportRulesXLSX(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	tech, err := client.Technology.Create().SetName("n28").Save(ctx)
	require.NoError(t, err)

	seedRule(t, client, tech.ID, "esd", "Clamp Placement", 1, true)
	seedRule(t, client, tech.ID, "esd", "HBM Target", 2, true)
	seedRule(t, client, tech.ID, "latchup", "Well Tap Density", 1, true)
	seedRule(t, client, tech.ID, "esd", "Retired Rule", 3, false)

	data, err := svc.ExportRulesXLSX(ctx, tech.ID, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "ESD Rules")
	assert.Contains(t, sheets, "Latchup Rules")
	assert.NotContains(t, sheets, "Sheet1")

	rows, err := f.GetRows("ESD Rules")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two active rules
	assert.Equal(t, []string{"#", "Title", "Content", "Severity", "Category"}, rows[0])
	assert.Equal(t, "Clamp Placement", rows[1][1])
	assert.Equal(t, "HBM Target", rows[2][1])
	assert.Equal(t, "critical", rows[1][3])

	latchup, err := f.GetRows("Latchup Rules")
	require.NoError(t, err)
	require.Len(t, latchup, 2)
	assert.Equal(t, "Well Tap Density", latchup[1][1])
}

func TestExportRulesXLSXFilterByType(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	tech, err := client.Technology.Create().SetName("n16").Save(ctx)
	require.NoError(t, err)

	seedRule(t, client, tech.ID, "esd", "Clamp Placement", 1, true)
	seedRule(t, client, tech.ID, "latchup", "Guard Rings", 1, true)

	ruleType := constants.RuleTypeLatchup
	data, err := svc.ExportRulesXLSX(ctx, tech.ID, &ruleType)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Latchup Rules")
	assert.NotContains(t, sheets, "ESD Rules")
}

func TestExportRulesXLSXEmptyTechnology(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	tech, err := client.Technology.Create().SetName("bare").Save(ctx)
	require.NoError(t, err)

	data, err := svc.ExportRulesXLSX(ctx, tech.ID, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	// No rules means the workbook keeps its default sheet.
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}

func TestExportRulesXLSXUnknownTechnology(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ExportRulesXLSX(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, common.ErrNotFound)
}
