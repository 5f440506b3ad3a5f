package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	require.NoError(t, os.WriteFile(path, []byte(validFile), 0o644))

	c, bank, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "net-plus", c.ID)
	assert.Equal(t, "Networking Fundamentals", c.Name)
	assert.True(t, c.PassingScore.Equal(dec("72")), "passing score = %s", c.PassingScore)

	require.Len(t, c.Topics, 2)
	routing := c.Topics[0]
	assert.Equal(t, "routing", routing.ID)
	assert.Equal(t, "RTE", routing.Code)
	assert.Equal(t, 1, routing.Ordinal)
	assert.True(t, routing.Weight.Equal(dec("60")), "weight = %s", routing.Weight)

	require.Equal(t, 2, bank.Len())
	q, ok := bank.Get("q2")
	require.True(t, ok)
	assert.Equal(t, "security", q.TopicID)
	assert.False(t, q.Active)
	assert.True(t, q.Difficulty.Equal(dec("0.8")), "difficulty = %s", q.Difficulty)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, _, err := Load(path)
	require.Error(t, err)
}
