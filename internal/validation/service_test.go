package validation

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esdguide/ruletracker/constants"
	"github.com/esdguide/ruletracker/gen/ent"
	entrule "github.com/esdguide/ruletracker/gen/ent/rule"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/repository"
	"github.com/esdguide/ruletracker/internal/rules"
)

var dbSeq int

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:validation_test_%d?mode=memory&cache=shared", dbSeq)
	client, err := repository.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestService(t *testing.T, client *ent.Client) *Service {
	t.Helper()
	promoter := rules.NewPromoter("default", slog.Default())
	return NewService(client, promoter, nil, slog.Default())
}

func enqueue(t *testing.T, client *ent.Client, candidate entity.ExtractedRule) *entity.ValidationItem {
	t.Helper()
	repo := repository.NewValidationRepository(client, slog.Default())
	item, err := repo.Enqueue(context.Background(), nil, candidate)
	require.NoError(t, err)
	return item
}

func candidateFixture() entity.ExtractedRule {
	return entity.ExtractedRule{
		Title:    "Guard Ring Spacing",
		Content:  "Keep at least 5um between guard rings.",
		RuleType: "esd",
		Severity: "critical",
		Category: "layout",
	}
}

func TestApprovePromotesRule(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	item := enqueue(t, client, candidateFixture())

	updated, err := svc.Approve(ctx, item.ID, "reviewer@fab", "looks right")
	require.NoError(t, err)

	assert.Equal(t, string(constants.ValidationApproved), updated.Status)
	assert.Equal(t, "reviewer@fab", updated.ValidatedBy)
	assert.NotNil(t, updated.ValidatedAt)
	require.NotNil(t, updated.RuleID)

	rec, err := client.Rule.Get(ctx, *updated.RuleID)
	require.NoError(t, err)
	assert.Equal(t, "Guard Ring Spacing", rec.Title)
	assert.Equal(t, "esd", rec.RuleType)
	assert.Equal(t, "critical", rec.Severity)
	assert.Equal(t, 1, rec.OrderIndex)
	assert.True(t, rec.IsActive)

	// The default technology was created on demand.
	tech, err := rec.QueryTechnology().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", tech.Name)
}

func TestApproveAppendsToOrderingScope(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		item := enqueue(t, client, candidateFixture())
		updated, err := svc.Approve(ctx, item.ID, "reviewer", "")
		require.NoError(t, err)

		rec, err := client.Rule.Get(ctx, *updated.RuleID)
		require.NoError(t, err)
		assert.Equal(t, i, rec.OrderIndex)
	}

	// A different rule type starts its own sequence.
	other := candidateFixture()
	other.RuleType = "latchup"
	item := enqueue(t, client, other)
	updated, err := svc.Approve(ctx, item.ID, "reviewer", "")
	require.NoError(t, err)

	rec, err := client.Rule.Get(ctx, *updated.RuleID)
	require.NoError(t, err)
	assert.Equal(t, "latchup", rec.RuleType)
	assert.Equal(t, 1, rec.OrderIndex)
}

func TestApproveRejectsDecidedItems(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	item := enqueue(t, client, candidateFixture())
	_, err := svc.Approve(ctx, item.ID, "reviewer", "")
	require.NoError(t, err)

	_, err = svc.Approve(ctx, item.ID, "reviewer", "")
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestApproveRequiresReviewer(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)

	item := enqueue(t, client, candidateFixture())
	_, err := svc.Approve(context.Background(), item.ID, "  ", "")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestApproveRollsBackOnPromotionFailure(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	// An item whose payload slipped past enqueue-time checks: valid
	// JSON but no content, so promotion must fail.
	broken, err := client.ValidationItem.Create().
		SetExtractedContent([]byte(`{"title":"Orphan","content":""}`)).
		SetStatus(string(constants.ValidationPending)).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, broken.ID, "reviewer", "")
	require.Error(t, err)

	// The decision did not land and no rule was created.
	reloaded, err := client.ValidationItem.Get(ctx, broken.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ValidationPending), reloaded.Status)
	assert.Nil(t, reloaded.RuleID)

	count, err := client.Rule.Query().Where(entrule.TitleEQ("Orphan")).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRejectRequiresNotes(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	item := enqueue(t, client, candidateFixture())

	_, err := svc.Reject(ctx, item.ID, "reviewer", "   ")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	// The failed rejection left the item reviewable.
	updated, err := svc.Reject(ctx, item.ID, "reviewer", "duplicate of rule 12")
	require.NoError(t, err)
	assert.Equal(t, string(constants.ValidationRejected), updated.Status)
	assert.Equal(t, "duplicate of rule 12", updated.ValidatorNotes)
	assert.NotNil(t, updated.ValidatedAt)
	assert.Nil(t, updated.RuleID)
}

func TestNeedsReviewReopensDecidedItem(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	item := enqueue(t, client, candidateFixture())
	_, err := svc.Reject(ctx, item.ID, "reviewer", "wrong category")
	require.NoError(t, err)

	reopened, err := svc.NeedsReview(ctx, item.ID, "lead", "second opinion needed")
	require.NoError(t, err)
	assert.Equal(t, string(constants.ValidationNeedsReview), reopened.Status)

	// A reopened item can be approved.
	approved, err := svc.Approve(ctx, item.ID, "lead", "")
	require.NoError(t, err)
	assert.Equal(t, string(constants.ValidationApproved), approved.Status)
	assert.NotNil(t, approved.RuleID)
}

func TestDecisionsOnMissingItem(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	missing := enqueue(t, client, candidateFixture()).ID
	require.NoError(t, client.ValidationItem.DeleteOneID(missing).Exec(ctx))

	_, err := svc.Approve(ctx, missing, "reviewer", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = svc.Reject(ctx, missing, "reviewer", "notes")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = svc.NeedsReview(ctx, missing, "reviewer", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
