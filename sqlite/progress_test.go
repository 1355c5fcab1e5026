package sqlite_test

import (
	"context"
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_UpsertProgress(t *testing.T) {
	t.Parallel()

	t.Run("insert then update keeps a single record per user and chapter", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		user := mustCreateUser(t, db, "a@example.com")
		course := mustCreateCourse(t, db, user.ID)
		chapter := mustCreateChapters(t, db, course.ID, 1)[0]
		svc := sqlite.NewProgressService(db)
		ctx := context.Background()

		require.NoError(t, svc.UpsertProgress(ctx, &coursegen.Progress{
			UserID:    user.ID,
			ChapterID: chapter.ID,
			Completed: false,
		}))
		require.NoError(t, svc.UpsertProgress(ctx, &coursegen.Progress{
			UserID:    user.ID,
			ChapterID: chapter.ID,
			Completed: true,
		}))

		records, err := svc.FindProgress(ctx, coursegen.ProgressFilter{UserID: &user.ID})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Completed)
		assert.False(t, records[0].CompletedAt.IsZero())
	})

	t.Run("rejects records without a chapter", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		err := sqlite.NewProgressService(db).UpsertProgress(context.Background(), &coursegen.Progress{UserID: "u-1"})
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})
}
