package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_run_prints_before_and_after_remove(t *testing.T) {
	var out bytes.Buffer

	err := run(&out, []string{"linked-list"})
	require.NoError(t, err)
	require.Equal(t, "before remove:\n1\n2\n3\nafter remove:\n1\n3\n", out.String())
}

func Test_run_rejects_unknown_flags(t *testing.T) {
	var out bytes.Buffer

	err := run(&out, []string{"linked-list", "--nope"})
	require.Error(t, err)
	require.Empty(t, out.String())
}
