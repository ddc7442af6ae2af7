package rest

import (
	"testing"

	"github.com/publica-dev/publica/internal/db"
	"github.com/publica-dev/publica/internal/publica"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	status, err := parseStatus("PUBLISHED")
	require.NoError(t, err)
	assert.Equal(t, publica.StatusPublished, status)

	_, err = parseStatus("ARCHIVED")
	assert.Error(t, err)

	none, err := optionalStatus(nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	empty := ""
	none, err = optionalStatus(&empty)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestNewArticleCarriesScores(t *testing.T) {
	score := 42
	relevance := 13.5
	in := publica.Article{
		Article:         db.Article{ID: "a1", Title: "t", Tags: []db.Tag{{ID: "tag1", Name: "go"}}},
		EngagementScore: &score,
		RelevanceScore:  &relevance,
	}

	out := newArticle(in)
	require.NotNil(t, out.EngagementScore)
	assert.Equal(t, 42, *out.EngagementScore)
	require.NotNil(t, out.RelevanceScore)
	assert.Equal(t, 13.5, *out.RelevanceScore)
	require.Len(t, out.Tags, 1)
	assert.Nil(t, out.Tags[0].ArticleCount, "plain tag conversion must not attach counts")
}

func TestIPRateLimiterBurst(t *testing.T) {
	limiter := newIPRateLimiter(authRateLimit, 2)

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"), "third request in the burst must be refused")

	assert.True(t, limiter.allow("10.0.0.2"), "a different client gets its own bucket")
}
