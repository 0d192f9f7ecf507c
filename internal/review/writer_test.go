package review

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateBothRows(t *testing.T) {
	c := threePairs(t)
	require.NoError(t, Annotate(c.Pairs[1], StatusWrong))

	for _, r := range c.Pairs[1] {
		s, ok := r.Status()
		assert.True(t, ok)
		assert.Equal(t, StatusWrong, s)
	}
	_, ok := c.Pairs[0][0].Status()
	assert.False(t, ok)
}

func TestAnnotateRejectsUnknownStatus(t *testing.T) {
	c := threePairs(t)
	err := Annotate(c.Pairs[0], Status("Maybe"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.False(t, c.Pairs[0][0].Has(FieldStatus))
}

func TestSaveRoundTrip(t *testing.T) {
	c := threePairs(t)
	require.NoError(t, Annotate(c.Pairs[0], StatusCorrect))

	path := filepath.Join(t.TempDir(), "output", "completed_review.csv")
	require.NoError(t, Save(c, path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, reloaded.Len())

	s, ok := reloaded.Pairs[0].Status()
	assert.True(t, ok)
	assert.Equal(t, StatusCorrect, s)
	for _, p := range reloaded.Pairs[1:] {
		for _, r := range p {
			_, ok := r.Status()
			assert.False(t, ok, "case %s", r.CaseID())
		}
	}
}

func TestSaveHeaderWithoutReview(t *testing.T) {
	c := threePairs(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Save(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "caseid,front_image", lines[0])
	assert.Len(t, lines, 7)
}

func TestSaveAddsStatusWhenOnlyLaterPairReviewed(t *testing.T) {
	c := threePairs(t)
	require.NoError(t, Annotate(c.Pairs[2], StatusWrong))

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Save(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "caseid,front_image,status", lines[0])
	assert.Equal(t, "A,1,", lines[1])
	assert.Equal(t, "C,6,Wrong", lines[6])
}

func TestSaveOverwrites(t *testing.T) {
	c := threePairs(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale line\n", 50)), 0o644))

	require.NoError(t, Save(c, path))
	require.NoError(t, Save(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Equal(t, 7, strings.Count(string(data), "\n"))
}

func TestSaveEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := Save(&Collection{}, path)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, ErrEmptyCollection)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestSaveUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := Save(threePairs(t), filepath.Join(blocker, "out.csv"))
	var pe *PersistenceError
	assert.True(t, errors.As(err, &pe))
}

func TestScenarioExcludedRowsPassThrough(t *testing.T) {
	input := "caseid,front_image\nA,a1\nB,b1\nA,a2\nC,c1\nC,c2\n"
	c, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, caseIDs(c))

	require.NoError(t, Annotate(c.Pairs[0], StatusWrong))
	require.NoError(t, Annotate(c.Pairs[1], StatusCorrect))

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Save(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "caseid,front_image,status\n"+
		"A,a1,Wrong\nA,a2,Wrong\nC,c1,Correct\nC,c2,Correct\nB,b1,\n", string(data))
}
