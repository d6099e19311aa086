package filtering_test

import (
	"testing"

	"github.com/hostelhub/hostelhub_backend/internal/utils/filtering"
	"github.com/stretchr/testify/assert"
)

func TestMatchesQuery(t *testing.T) {
	assert.True(t, filtering.MatchesQuery("", "anything"))
	assert.True(t, filtering.MatchesQuery("ali", "Alice Johnson", "alice@example.com"))
	assert.True(t, filtering.MatchesQuery("EXAMPLE.COM", "Alice Johnson", "alice@example.com"))
	assert.False(t, filtering.MatchesQuery("bob", "Alice Johnson", "alice@example.com"))
	assert.False(t, filtering.MatchesQuery("x"))
}

func TestMatchesStatus(t *testing.T) {
	assert.True(t, filtering.MatchesStatus("all", "paid"))
	assert.True(t, filtering.MatchesStatus("", "paid"))
	assert.True(t, filtering.MatchesStatus("paid", "paid"))
	assert.False(t, filtering.MatchesStatus("pending", "paid"))
}

type testResident struct {
	name   string
	email  string
	status string
}

func residentFields(r testResident) []string { return []string{r.name, r.email} }
func residentStatus(r testResident) string   { return r.status }

func TestApply(t *testing.T) {
	residents := []testResident{
		{"Alice Johnson", "alice@example.com", "paid"},
		{"Bob Smith", "bob@example.com", "pending"},
		{"Carol Jones", "carol@example.com", "overdue"},
	}

	t.Run("no match returns empty set", func(t *testing.T) {
		got := filtering.Apply(residents, "zzz", "all", residentFields, residentStatus)
		assert.Empty(t, got)
	})

	t.Run("all bypasses status regardless of search", func(t *testing.T) {
		got := filtering.Apply(residents, "", "all", residentFields, residentStatus)
		assert.Equal(t, residents, got)
	})

	t.Run("predicates are ANDed", func(t *testing.T) {
		got := filtering.Apply(residents, "jo", "paid", residentFields, residentStatus)
		assert.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].name)
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := filtering.Apply(residents, "example.com", "all", residentFields, residentStatus)
		assert.Len(t, got, 3)
		assert.Equal(t, "Alice Johnson", got[0].name)
		assert.Equal(t, "Carol Jones", got[2].name)
	})
}
