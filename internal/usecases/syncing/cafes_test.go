package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository/memory"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stepClock() func() time.Time {
	current := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func TestCafeHook_WithMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithClock(stepClock()))
	hook := NewCafeHook(store.Cafes())

	assert.True(t, hook.Snapshot().Loading, "antes da primeira busca o hook está carregando")

	for _, name := range []string{"Kafe Santai", "Coffee Corner"} {
		_, err := store.Cafes().Insert(ctx, &domain.CafeInput{Name: name, Status: domain.CafeStatusActive})
		require.NoError(t, err)
	}

	require.NoError(t, hook.FetchAll(ctx))
	snapshot := hook.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Nil(t, snapshot.Filter)
	require.Len(t, snapshot.Items, 2)

	created, err := hook.Create(ctx, &domain.CafeInput{Name: "Warung Kopi Asik", Email: "halo@warungkopi.id", Status: domain.CafeStatusActive})
	require.NoError(t, err)

	names := make([]string, 0, 3)
	for _, cafe := range hook.Snapshot().Items {
		names = append(names, cafe.Name)
	}
	assert.Equal(t, []string{"Kafe Santai", "Coffee Corner", "Warung Kopi Asik"}, names)

	status := domain.CafeStatusInactive
	updated, err := hook.Update(ctx, created.ID, &domain.CafePatch{Status: &status})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	cafe, ok := hook.Find(created.ID)
	require.True(t, ok)
	assert.Equal(t, domain.CafeStatusInactive, cafe.Status)
	assert.Equal(t, 2, indexOf(hook.Snapshot().Items, created.ID))

	require.NoError(t, hook.Delete(ctx, created.ID))
	_, ok = hook.Find(created.ID)
	assert.False(t, ok)

	// o cache segue igual ao que o gateway devolve
	cached := hook.Snapshot().Items
	require.NoError(t, hook.Refetch(ctx))
	assert.Equal(t, cached, hook.Snapshot().Items)
}

func TestCafeHook_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCafeRepository(ctrl)
	hook := NewCafeHook(repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *domain.CafeInput
	}{
		{name: "sem corpo", input: nil},
		{name: "sem nome", input: &domain.CafeInput{Status: domain.CafeStatusActive}},
		{name: "status desconhecido", input: &domain.CafeInput{Name: "Kopi", Status: "closed"}},
		{name: "e-mail inválido", input: &domain.CafeInput{Name: "Kopi", Email: "kopi", Status: domain.CafeStatusActive}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hook.Create(ctx, tt.input)

			var opErr *OperationError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, OpCreate, opErr.Op)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCafeHook_SnapshotIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCafeRepository(ctrl)

	repo.EXPECT().Select(gomock.Any(), domain.CafeOrder).Return([]*domain.Cafe{
		{ID: "1", Name: "Kafe Santai", Status: domain.CafeStatusActive},
	}, nil)

	hook := NewCafeHook(repo)
	require.NoError(t, hook.FetchAll(context.Background()))

	snapshot := hook.Snapshot()
	snapshot.Items[0].Name = "changed"

	assert.Equal(t, "Kafe Santai", hook.Snapshot().Items[0].Name)
}

func TestFallbackMessages(t *testing.T) {
	cafes := entityNames{collection: "cafes", plural: "cafes", singular: "cafe"}
	content := entityNames{collection: "content_reports", plural: "content reports", singular: "content report"}

	assert.Equal(t, "Error fetching cafes", fallbackMessage(cafes, OpFetch))
	assert.Equal(t, "Error creating cafe", fallbackMessage(cafes, OpCreate))
	assert.Equal(t, "Error updating content report", fallbackMessage(content, OpUpdate))
	assert.Equal(t, "Error deleting content report", fallbackMessage(content, OpDelete))
}

func indexOf(cafes []domain.Cafe, id string) int {
	for i, cafe := range cafes {
		if cafe.ID == id {
			return i
		}
	}
	return -1
}

func TestCreateWithTiedTimestampsMatchesRefetch(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.WithClock(func() time.Time { return fixed }))

	t.Run("cafés ascendentes", func(t *testing.T) {
		hook := NewCafeHook(store.Cafes())
		for _, name := range []string{"A", "B"} {
			_, err := store.Cafes().Insert(ctx, &domain.CafeInput{Name: name, Status: domain.CafeStatusActive})
			require.NoError(t, err)
		}
		require.NoError(t, hook.FetchAll(ctx))

		_, err := hook.Create(ctx, &domain.CafeInput{Name: "C", Status: domain.CafeStatusActive})
		require.NoError(t, err)
		afterCreate := ids(hook.Snapshot().Items, func(c domain.Cafe) string { return c.Name })

		require.NoError(t, hook.Refetch(ctx))
		afterRefetch := ids(hook.Snapshot().Items, func(c domain.Cafe) string { return c.Name })

		assert.Equal(t, []string{"A", "B", "C"}, afterCreate)
		assert.Equal(t, afterRefetch, afterCreate)
	})

	t.Run("relatórios descendentes", func(t *testing.T) {
		filter := domain.NewReportFilter("1", 6, 2024)
		hook := NewAdsReportHook(store.AdsReports())
		for _, platform := range []string{domain.PlatformMetaAds, domain.PlatformGoogleAds} {
			_, err := store.AdsReports().Insert(ctx, &domain.AdsReportInput{CafeID: "1", Month: 6, Year: 2024, Platform: platform})
			require.NoError(t, err)
		}
		require.NoError(t, hook.FetchAll(ctx, filter))

		_, err := hook.Create(ctx, &domain.AdsReportInput{CafeID: "1", Month: 6, Year: 2024, Platform: domain.PlatformTikTokAds})
		require.NoError(t, err)
		afterCreate := ids(hook.Snapshot().Items, func(r domain.AdsReport) string { return r.Platform })

		require.NoError(t, hook.Refetch(ctx))
		afterRefetch := ids(hook.Snapshot().Items, func(r domain.AdsReport) string { return r.Platform })

		assert.Equal(t, []string{domain.PlatformTikTokAds, domain.PlatformGoogleAds, domain.PlatformMetaAds}, afterCreate)
		assert.Equal(t, afterRefetch, afterCreate)
	})
}
