package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vybiumrescue "github.com/vybium/vybium-rescue/pkg/vybium-rescue"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func TestV1Command(t *testing.T) {
	out, err := run(t, "", "v1", "1,2,3,4")
	require.NoError(t, err)
	assert.Equal(t, "e691d1126e03a198a85054705fbcfd3c961a3e05669076f4592f303c1331c4aa\n", out)

	_, err = run(t, "", "v1", "1,2,3")
	assert.ErrorIs(t, err, vybiumrescue.ErrArity)

	_, err = run(t, "", "v1")
	assert.Error(t, err)
}

func TestV2Command(t *testing.T) {
	out, err := run(t, "", "v2", "1,2,3,4,5,6,7,8")
	require.NoError(t, err)
	assert.Equal(t, "724695897916508236,14137149328437513627,1730715086038432291,13793756146108707933\n", out)
}

func TestV3Command(t *testing.T) {
	out, err := run(t, "", "v3", "hello")
	require.NoError(t, err)
	assert.Equal(t, "c237d81f56f402dcec186d8be92bc7f30a64b45479205da948b7175d01a65144\n", out)

	out, err = run(t, "", "--encoding", "base64", "v3", "hello")
	require.NoError(t, err)
	assert.Equal(t, "wjfYH1b0AtzsGG2L6SvH8wpktFR5IF2pSLcXXQGmUUQ=\n", out)

	hexOut, err := run(t, "", "v3", "--hex", "68656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "c237d81f56f402dcec186d8be92bc7f30a64b45479205da948b7175d01a65144\n", hexOut)

	_, err = run(t, "", "v3", "--raw", "hello")
	assert.ErrorIs(t, err, vybiumrescue.ErrText)
}

func TestBatchCommand(t *testing.T) {
	out, err := run(t, "1,2,3,4\n5,6,7,8\n1,2,3,4\n", "--workers", "2", "batch")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "e691d1126e03a198a85054705fbcfd3c961a3e05669076f4592f303c1331c4aa", lines[0])
	assert.Equal(t, lines[0], lines[2])
	assert.NotEqual(t, lines[0], lines[1])

	out, err = run(t, "1,2,3,4,5,6,7,8\n", "batch", "--variant", "v2")
	require.NoError(t, err)
	assert.Equal(t, "724695897916508236,14137149328437513627,1730715086038432291,13793756146108707933\n", out)

	_, err = run(t, "1,2,3,4\n1,2\n", "batch")
	assert.ErrorIs(t, err, vybiumrescue.ErrArity)

	_, err = run(t, "", "batch", "--variant", "v9")
	assert.Error(t, err)
}

func TestLayoutCommand(t *testing.T) {
	out, err := run(t, "", "layout")
	require.NoError(t, err)
	for _, name := range []string{"op_counter", "sponge", "cf_ops", "ld_ops", "hd_ops", "ctx_depth", "loop_depth", "reserved"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "[5,8)")
	assert.Contains(t, out, "0x00000000000000e0")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rescue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoding: base64\nlog_format: json\n"), 0o600))

	out, err := run(t, "", "--config", path, "v3", "hello")
	require.NoError(t, err)
	assert.Equal(t, "wjfYH1b0AtzsGG2L6SvH8wpktFR5IF2pSLcXXQGmUUQ=\n", out)

	out, err = run(t, "", "--config", path, "--encoding", "hex", "v3", "hello")
	require.NoError(t, err)
	assert.Equal(t, "c237d81f56f402dcec186d8be92bc7f30a64b45479205da948b7175d01a65144\n", out)

	_, err = run(t, "", "--log-level", "shout", "v3", "hello")
	assert.Error(t, err)
}
