package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	traversals, err := parseOrders("in,pre,post")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, demo(&buf, traversals))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "inorder: A * B + C / D / E + F - G / H\n"))
	assert.Equal(t, 3, strings.Count(out, "preorder: / + * A B / C D - + E F / G H\n"))
	assert.Equal(t, 3, strings.Count(out, "postorder: A B * C D / + E F + G H / - /\n"))
	assert.Contains(t, out, "prefix expression tree: /+*AB/CD-+EF/GH\n")
}

func TestParseOrders(t *testing.T) {
	traversals, err := parseOrders("post, pre")
	require.NoError(t, err)
	require.Len(t, traversals, 2)
	assert.Equal(t, "postorder", traversals[0].name)
	assert.Equal(t, "preorder", traversals[1].name)

	_, err = parseOrders("level")
	assert.Error(t, err)
}

const batchInput = `
# same tree three ways
infix (A*B+C/D)/(E+F-G/H)
postfix AB*CD/+EF+GH/-/
prefix /+*AB/CD-+EF/GH

infix A-B-C
infix A-(B-C)
postfix ABC--
postfix AB++
`

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader(batchInput))
	require.NoError(t, err)
	require.Len(t, lines, 7)
	assert.Equal(t, "A-(B-C)", lines[4].expr)

	_, err = readLines(strings.NewReader("sideways AB+\n"))
	assert.Error(t, err)
}

func TestGroupEquivalent(t *testing.T) {
	lines, err := readLines(strings.NewReader(batchInput))
	require.NoError(t, err)
	for _, workers := range []int{1, 4} {
		exprs := parseAll(lines, workers)
		assert.Nil(t, exprs[6].Root)
		uf := groupEquivalent(exprs, workers)
		assert.Equal(t, [][]int{{0, 1, 2}, {4, 5}}, uf.Groups())
	}
}

func TestBatchOutput(t *testing.T) {
	lines, err := readLines(strings.NewReader(batchInput))
	require.NoError(t, err)
	traversals, err := parseOrders("post")
	require.NoError(t, err)
	var buf bytes.Buffer
	batch(&buf, lines, traversals)

	out := buf.String()
	assert.Contains(t, out, "3: infix A-B-C\n  postorder: A B - C -\n")
	assert.Contains(t, out, "group 0: 0 1 2\n")
	assert.Contains(t, out, "group 1: 4 5\n")
	assert.NotContains(t, out, "6: postfix AB++")
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "1 2 3", joinInts([]int{1, 2, 3}, " "))
	assert.Equal(t, "", joinInts(nil, " "))
}
