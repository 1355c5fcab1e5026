package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCreateChapters inserts n chapters for course with order indices 0..n-1.
func mustCreateChapters(t *testing.T, db *sqlite.DB, courseID string, n int) []*coursegen.Chapter {
	t.Helper()

	chapters := make([]*coursegen.Chapter, 0, n)
	for i := 0; i < n; i++ {
		chapters = append(chapters, &coursegen.Chapter{
			CourseID:   courseID,
			Title:      fmt.Sprintf("Chapter %d", i+1),
			Content:    fmt.Sprintf("Summary %d", i+1),
			Script:     fmt.Sprintf("Narration script %d", i+1),
			OrderIndex: i,
		})
	}
	require.NoError(t, sqlite.NewChapterService(db).CreateChapters(context.Background(), chapters))
	return chapters
}

func TestChapterService_CreateChapters(t *testing.T) {
	t.Parallel()

	t.Run("batch insert fills IDs and content hashes", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		user := mustCreateUser(t, db, "a@example.com")
		course := mustCreateCourse(t, db, user.ID)

		chapters := mustCreateChapters(t, db, course.ID, 3)
		for _, ch := range chapters {
			assert.NotEmpty(t, ch.ID)
			assert.NotEmpty(t, ch.ContentHash)
			assert.False(t, ch.CreatedAt.IsZero())
		}
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		err := sqlite.NewChapterService(db).CreateChapters(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})

	t.Run("rejects duplicate order indices within a course", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		user := mustCreateUser(t, db, "a@example.com")
		course := mustCreateCourse(t, db, user.ID)

		err := sqlite.NewChapterService(db).CreateChapters(context.Background(), []*coursegen.Chapter{
			{CourseID: course.ID, Title: "One", OrderIndex: 0},
			{CourseID: course.ID, Title: "Two", OrderIndex: 0},
		})
		require.Error(t, err)
	})
}

func TestChapterService_FindChapters(t *testing.T) {
	t.Parallel()

	t.Run("returns chapters sorted by order index", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		user := mustCreateUser(t, db, "a@example.com")
		course := mustCreateCourse(t, db, user.ID)
		svc := sqlite.NewChapterService(db)

		// Insert out of order; reads must come back ordered.
		require.NoError(t, svc.CreateChapters(context.Background(), []*coursegen.Chapter{
			{CourseID: course.ID, Title: "Third", OrderIndex: 2},
			{CourseID: course.ID, Title: "First", OrderIndex: 0},
			{CourseID: course.ID, Title: "Second", OrderIndex: 1},
		}))

		got, err := svc.FindChapters(context.Background(), coursegen.ChapterFilter{CourseID: &course.ID})
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, ch := range got {
			assert.Equal(t, i, ch.OrderIndex)
		}
		assert.Equal(t, "First", got[0].Title)
		assert.Equal(t, "Third", got[2].Title)
	})
}

func TestChapterService_UpdateChapter(t *testing.T) {
	t.Parallel()

	t.Run("sets the audio URL", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		user := mustCreateUser(t, db, "a@example.com")
		course := mustCreateCourse(t, db, user.ID)
		chapters := mustCreateChapters(t, db, course.ID, 1)
		svc := sqlite.NewChapterService(db)

		audioURL := "http://localhost/media/audio/" + chapters[0].ID + ".mp3"
		got, err := svc.UpdateChapter(context.Background(), chapters[0].ID, coursegen.ChapterUpdate{AudioURL: &audioURL})
		require.NoError(t, err)
		assert.Equal(t, audioURL, got.AudioURL)

		// Structural fields are untouched.
		assert.Equal(t, "Chapter 1", got.Title)
	})

	t.Run("repeated update overwrites rather than duplicates", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		user := mustCreateUser(t, db, "a@example.com")
		course := mustCreateCourse(t, db, user.ID)
		chapters := mustCreateChapters(t, db, course.ID, 1)
		svc := sqlite.NewChapterService(db)

		first, second := "http://localhost/a.mp3", "http://localhost/b.mp3"
		_, err := svc.UpdateChapter(context.Background(), chapters[0].ID, coursegen.ChapterUpdate{AudioURL: &first})
		require.NoError(t, err)
		_, err = svc.UpdateChapter(context.Background(), chapters[0].ID, coursegen.ChapterUpdate{AudioURL: &second})
		require.NoError(t, err)

		got, err := svc.FindChapterByID(context.Background(), chapters[0].ID)
		require.NoError(t, err)
		assert.Equal(t, second, got.AudioURL)

		all, err := svc.FindChapters(context.Background(), coursegen.ChapterFilter{CourseID: &course.ID})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("returns ENOTFOUND for unknown chapter", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		url := "http://localhost/a.mp3"
		_, err := sqlite.NewChapterService(db).UpdateChapter(context.Background(), "nope", coursegen.ChapterUpdate{AudioURL: &url})
		require.Error(t, err)
		assert.Equal(t, coursegen.ENOTFOUND, coursegen.ErrorCode(err))
	})
}
