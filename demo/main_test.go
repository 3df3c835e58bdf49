package main

import (
	"bytes"
	"testing"

	"github.com/infinivision/linear/errmsg"
	"github.com/infinivision/linear/list"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	for _, capacity := range []int{3, 5, 25} {
		cfg := DefaultConfig()
		cfg.Capacity = capacity
		for name, run := range scenarios {
			var buf bytes.Buffer
			c := &checker{log: logger.New(&buf, "linear")}
			run(c, cfg)
			require.Zero(t, c.fails, "%s with capacity %d: %s", name, capacity, buf.String())
			require.Zero(t, buf.Len())
		}
	}
}

func TestCheckerCountsFailures(t *testing.T) {
	var buf bytes.Buffer
	c := &checker{log: logger.New(&buf, "linear")}

	c.expect("same", "0, 1", "0, 1")
	c.expectErr("same error", errmsg.NotFound, errmsg.NotFound)
	require.Zero(t, c.fails)

	c.expect("differ", 1, 2)
	c.expectErr("differ error", errmsg.NotFound, errmsg.NoSuchElement)
	require.Equal(t, 2, c.fails)
}

func TestFind(t *testing.T) {
	l := list.New(0)
	l.AppendToTail(1)

	nd, err := find(l, 1)
	require.NoError(t, err)
	require.Same(t, l.Tail(), nd)

	_, err = find(l, 2)
	require.ErrorIs(t, err, errmsg.NotFound)
}
