package publica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("AdminMayDoAnything", func(t *testing.T) {
		for _, from := range Statuses {
			for _, to := range Statuses {
				assert.True(t, CanTransition(RoleAdmin, false, from, to))
				assert.True(t, CanTransition(RoleAdmin, true, from, to))
			}
		}
	})

	t.Run("EditorLimitedToDraftAndPendingOnOwnArticles", func(t *testing.T) {
		assert.True(t, CanTransition(RoleEditor, true, StatusDraft, StatusPending))
		assert.True(t, CanTransition(RoleEditor, true, StatusRejected, StatusDraft))

		assert.False(t, CanTransition(RoleEditor, true, StatusPending, StatusPublished))
		assert.False(t, CanTransition(RoleEditor, true, StatusPending, StatusRejected))
	})

	t.Run("EditorDeniedOnForeignArticles", func(t *testing.T) {
		for _, to := range Statuses {
			assert.False(t, CanTransition(RoleEditor, false, StatusDraft, to))
		}
	})

	t.Run("ReaderNeverTransitions", func(t *testing.T) {
		for _, to := range Statuses {
			assert.False(t, CanTransition(RoleUser, true, StatusDraft, to))
			assert.False(t, CanTransition(RoleUser, false, StatusDraft, to))
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, status := range Statuses {
		assert.True(t, ValidStatus(status))
	}
	assert.False(t, ValidStatus("ARCHIVED"))
	assert.False(t, ValidStatus(""))
}

func TestNewPagination(t *testing.T) {
	page := PageRequest{Page: 2, Limit: 10}

	assert.Equal(t, Pagination{Total: 25, Pages: 3, CurrentPage: 2}, newPagination(25, page))
	assert.Equal(t, Pagination{Total: 20, Pages: 2, CurrentPage: 2}, newPagination(20, page))
	assert.Equal(t, Pagination{Total: 0, Pages: 0, CurrentPage: 2}, newPagination(0, page))
}

func TestPageRequestNormalized(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 1, Limit: 10}, PageRequest{}.normalized())
	assert.Equal(t, PageRequest{Page: 1, Limit: 10}, PageRequest{Page: -3, Limit: 0}.normalized())
	assert.Equal(t, PageRequest{Page: 4, Limit: 25}, PageRequest{Page: 4, Limit: 25}.normalized())
}
