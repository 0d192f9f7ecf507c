package main

import (
	"strings"
	"testing"

	"photo-compare/internal/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	input := "caseid,front_image,status\n" +
		"A,a1,Correct\nA,a2,Correct\n" +
		"B,b1,\n" +
		"C,c1,Wrong\nC,c2,Wrong\n" +
		"D,d1,\nD,d2,\n"
	c, err := review.Read(strings.NewReader(input))
	require.NoError(t, err)

	out := renderSummary(c)
	lines := strings.Split(out, "\n")

	find := func(label string) string {
		for _, l := range lines {
			if strings.Contains(l, label) {
				return l
			}
		}
		return ""
	}
	assert.Contains(t, find("Pairs"), "3")
	assert.Contains(t, find("Correct"), "1")
	assert.Contains(t, find("Wrong"), "1")
	assert.Contains(t, find("Pending"), "1")
	assert.Contains(t, find("Excluded"), "1")
}
