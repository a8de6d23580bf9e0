package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "perry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_AddAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.Add(ctx, []domain.BlockedSite{
		{Domain: "reddit.com", Source: domain.SiteSourceDefault},
		{Domain: "news.ycombinator.com"},
	})
	require.NoError(t, err)

	sites, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "news.ycombinator.com", sites[0].Domain)
	assert.Equal(t, domain.SiteSourceUser, sites[0].Source)
	assert.Equal(t, "reddit.com", sites[1].Domain)
	assert.Equal(t, domain.SiteSourceDefault, sites[1].Source)
	assert.False(t, sites[1].CreatedAt.IsZero())
}

func TestSQLiteRepository_AddSkipsDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, []domain.BlockedSite{{Domain: "x.com", Source: domain.SiteSourceDefault}}))
	require.NoError(t, repo.Add(ctx, []domain.BlockedSite{{Domain: "x.com", Source: domain.SiteSourceImport}}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	sites, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SiteSourceDefault, sites[0].Source)
}

func TestSQLiteRepository_ExistsAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, []domain.BlockedSite{{Domain: "x.com"}, {Domain: "www.x.com"}, {Domain: "y.com"}}))

	exists, err := repo.Exists(ctx, "www.x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.Delete(ctx, []string{"x.com", "www.x.com", "missing.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	exists, err = repo.Exists(ctx, "x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLiteRepository_DeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, []domain.BlockedSite{{Domain: "x.com"}, {Domain: "y.com"}}))

	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSQLiteRepository_EmptyInputs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Add(ctx, nil))
	deleted, err := repo.Delete(ctx, nil)
	assert.NoError(t, err)
	assert.Zero(t, deleted)
}
