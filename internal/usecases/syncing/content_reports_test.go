package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository/memory"
	"github.com/vfg2006/cafe-report-api/internal/domain"
)

func contentInput(cafeID string, day int, status domain.ContentStatus) *domain.ContentReportInput {
	return &domain.ContentReportInput{
		CafeID:    cafeID,
		Month:     6,
		Year:      2024,
		PostDate:  domain.NewDate(2024, time.June, day),
		Caption:   "Es kopi susu gula aren",
		Platform:  "Instagram",
		Status:    status,
		MediaType: domain.MediaTypeImage,
	}
}

func TestContentReportHook_FilteredScenario(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithClock(stepClock()))
	gateway := store.ContentReports()

	for _, day := range []int{5, 21, 12} {
		_, err := gateway.Insert(ctx, contentInput("1", day, domain.ContentStatusPublished))
		require.NoError(t, err)
	}
	_, err := gateway.Insert(ctx, contentInput("2", 8, domain.ContentStatusPublished))
	require.NoError(t, err)

	hook := NewContentReportHook(gateway)
	fetched, err := hook.Bind(ctx, juneFilter)
	require.NoError(t, err)
	require.True(t, fetched)

	snapshot := hook.Snapshot()
	require.Len(t, snapshot.Items, 3)
	dates := make([]string, 0, 3)
	for _, item := range snapshot.Items {
		assert.Equal(t, "1", item.CafeID)
		dates = append(dates, item.PostDate.String())
	}
	assert.Equal(t, []string{"2024-06-21", "2024-06-12", "2024-06-05"}, dates)

	// post_date no meio do mês entra na posição da ordenação
	created, err := hook.Create(ctx, contentInput("1", 15, domain.ContentStatusDraft))
	require.NoError(t, err)
	assert.Equal(t, created.ID, hook.Snapshot().Items[1].ID)

	// a mesma ordem que o gateway devolveria
	cached := hook.Snapshot().Items
	require.NoError(t, hook.Refetch(ctx))
	assert.Equal(t, cached, hook.Snapshot().Items)
}

func TestContentReportHook_PostDateRequired(t *testing.T) {
	store := memory.NewStore()
	hook := NewContentReportHook(store.ContentReports())

	input := contentInput("1", 5, domain.ContentStatusPublished)
	input.PostDate = domain.Date{}

	_, err := hook.Create(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContentReportHook_SnapshotCopiesMediaURL(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithClock(stepClock()))
	hook := NewContentReportHook(store.ContentReports())
	_, err := hook.Bind(ctx, juneFilter)
	require.NoError(t, err)

	url := "https://cdn.example.com/v60.mp4"
	input := contentInput("1", 9, domain.ContentStatusScheduled)
	input.MediaType = domain.MediaTypeVideo
	input.MediaURL = &url

	_, err = hook.Create(ctx, input)
	require.NoError(t, err)

	snapshot := hook.Snapshot()
	*snapshot.Items[0].MediaURL = "changed"

	assert.Equal(t, url, *hook.Snapshot().Items[0].MediaURL)
}

func TestContentReportHook_ClearMediaURL(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithClock(stepClock()))
	hook := NewContentReportHook(store.ContentReports())
	_, err := hook.Bind(ctx, juneFilter)
	require.NoError(t, err)

	url := "https://cdn.example.com/latte.jpg"
	input := contentInput("1", 12, domain.ContentStatusPublished)
	input.MediaURL = &url
	created, err := hook.Create(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created.MediaURL)

	other := "https://cdn.example.com/mocha.jpg"
	_, err = hook.Update(ctx, created.ID, &domain.ContentReportPatch{MediaURL: &other, ClearMediaURL: true})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// um patch sem media_url mantém a mídia
	caption := "Latte art"
	updated, err := hook.Update(ctx, created.ID, &domain.ContentReportPatch{Caption: &caption})
	require.NoError(t, err)
	require.NotNil(t, updated.MediaURL)
	assert.Equal(t, url, *updated.MediaURL)

	updated, err = hook.Update(ctx, created.ID, &domain.ContentReportPatch{ClearMediaURL: true})
	require.NoError(t, err)
	assert.Nil(t, updated.MediaURL)

	cached := hook.Snapshot().Items
	require.Len(t, cached, 1)
	assert.Nil(t, cached[0].MediaURL)

	require.NoError(t, hook.Refetch(ctx))
	assert.Equal(t, cached, hook.Snapshot().Items)
}
