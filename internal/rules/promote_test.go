package rules

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esdguide/ruletracker/gen/ent"
	entruleimage "github.com/esdguide/ruletracker/gen/ent/ruleimage"
	"github.com/esdguide/ruletracker/internal/common"
	"github.com/esdguide/ruletracker/internal/entity"
	"github.com/esdguide/ruletracker/internal/repository"
)

var dbSeq int

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:promote_test_%d?mode=memory&cache=shared", dbSeq)
	client, err := repository.OpenSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func promote(t *testing.T, client *ent.Client, candidate entity.ExtractedRule) (*ent.Rule, error) {
	t.Helper()
	ctx := context.Background()
	tx, err := client.Tx(ctx)
	require.NoError(t, err)

	promoter := NewPromoter("default", slog.Default())
	rec, err := promoter.Promote(ctx, tx, candidate, "tester")
	if err != nil {
		require.NoError(t, tx.Rollback())
		return nil, err
	}
	require.NoError(t, tx.Commit())
	return rec, nil
}

func TestPromoteAttachesImagesInOrder(t *testing.T) {
	client := newTestClient(t)

	rec, err := promote(t, client, entity.ExtractedRule{
		Title:   "Clamp Placement",
		Content: "Place primary clamps within 50um of the pad.",
		Images: []entity.ExtractedImage{
			{Filename: "layout.png", Data: []byte{0x89, 0x50}, MimeType: "image/png", Caption: "pad ring"},
			{Filename: "empty.png"}, // no bytes, dropped
			{Data: []byte{0xff, 0xd8}},
		},
	})
	require.NoError(t, err)

	imgs, err := client.RuleImage.Query().
		Where(entruleimage.RuleIDEQ(rec.ID)).
		Order(ent.Asc(entruleimage.FieldOrderIndex)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, imgs, 2)

	assert.Equal(t, "layout.png", imgs[0].Filename)
	assert.Equal(t, 0, imgs[0].OrderIndex)
	// Unnamed image gets a positional filename.
	assert.Equal(t, "image_1", imgs[1].Filename)
	assert.Equal(t, 1, imgs[1].OrderIndex)
}

func TestPromoteHonorsTechnologyHint(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tech, err := client.Technology.Create().SetName("n28").Save(ctx)
	require.NoError(t, err)

	candidate := entity.ExtractedRule{
		Title:        "Well Tap Density",
		Content:      "One tap per 25um in each well.",
		RuleType:     "latchup",
		TechnologyID: &tech.ID,
	}
	rec, err := promote(t, client, candidate)
	require.NoError(t, err)
	assert.Equal(t, tech.ID, rec.TechnologyID)

	// No default technology was created as a side effect.
	count, err := client.Technology.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPromoteRejectsUnknownTechnology(t *testing.T) {
	client := newTestClient(t)

	bogus := entity.ExtractedRule{
		Title:   "Orphan",
		Content: "Content.",
	}
	id := uuid.New()
	bogus.TechnologyID = &id

	_, err := promote(t, client, bogus)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPromoteClassifiesUntypedCandidates(t *testing.T) {
	client := newTestClient(t)

	rec, err := promote(t, client, entity.ExtractedRule{
		Title:   "HBM target",
		Content: "All pads must survive 2kV HBM ESD stress.",
	})
	require.NoError(t, err)
	assert.Equal(t, "esd", rec.RuleType)
	assert.Equal(t, "medium", rec.Severity)
}
