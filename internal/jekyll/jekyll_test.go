// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jekyll

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/termsite/internal/container"
	"github.com/pdiddy/termsite/pkg/types"
)

type call struct {
	name string
	args []string
}

type fakeRuntime struct {
	specs   []container.Spec
	err     error
	noImage bool
}

func (f *fakeRuntime) Name() string    { return "podman" }
func (f *fakeRuntime) Available() bool { return true }
func (f *fakeRuntime) ImageExists(image string) error {
	if f.noImage {
		return errors.Newf("image %s not found", image)
	}
	return nil
}
func (f *fakeRuntime) Run(_ context.Context, spec container.Spec, _, _ io.Writer) error {
	f.specs = append(f.specs, spec)
	return f.err
}

func testBuilder(t *testing.T, mode types.JekyllMode) (*Builder, *[]call, *fakeRuntime, types.JekyllConfig) {
	t.Helper()
	dir := t.TempDir()
	cfg := types.DefaultConfig().Jekyll
	cfg.Mode = mode
	cfg.BuildDir = filepath.Join(dir, "_build")
	cfg.SiteDir = filepath.Join(dir, "_site")
	require.NoError(t, os.MkdirAll(cfg.BuildDir, 0o755))

	var calls []call
	rt := &fakeRuntime{}
	b := New(cfg, nil)
	b.Stdout, b.Stderr = io.Discard, io.Discard
	b.run = func(_ context.Context, name string, args []string, _, _ io.Writer) error {
		calls = append(calls, call{name: name, args: args})
		return nil
	}
	b.detect = func() (container.Runtime, error) { return rt, nil }
	return b, &calls, rt, cfg
}

func TestBuildNative(t *testing.T) {
	b, calls, rt, cfg := testBuilder(t, types.JekyllNative)

	require.NoError(t, b.Build(context.Background()))
	require.Len(t, *calls, 1)
	assert.Equal(t, "bundle", (*calls)[0].name)
	assert.Equal(t, []string{"exec", "jekyll", "build", "--source", cfg.BuildDir, "--destination", cfg.SiteDir},
		(*calls)[0].args)
	assert.Empty(t, rt.specs)
}

func TestServeNative(t *testing.T) {
	b, calls, _, _ := testBuilder(t, types.JekyllNative)

	require.NoError(t, b.Serve(context.Background()))
	require.Len(t, *calls, 1)
	args := (*calls)[0].args
	assert.Equal(t, "serve", args[2])
	assert.Equal(t, []string{"--host", "0.0.0.0", "--port", "4000"}, args[len(args)-4:])
}

func TestBuildNativeFailure(t *testing.T) {
	b, _, _, _ := testBuilder(t, types.JekyllNative)
	b.run = func(context.Context, string, []string, io.Writer, io.Writer) error {
		return errors.New("exit status 1")
	}

	err := b.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jekyll build")
}

func TestBuildContainer(t *testing.T) {
	b, calls, rt, cfg := testBuilder(t, types.JekyllContainer)

	require.NoError(t, b.Build(context.Background()))
	assert.Empty(t, *calls)
	require.Len(t, rt.specs, 1)

	spec := rt.specs[0]
	assert.Equal(t, "jekyll/jekyll:4", spec.Image)
	assert.Equal(t, []container.Mount{
		{Source: cfg.BuildDir, Target: containerSource},
		{Source: cfg.SiteDir, Target: containerSite},
	}, spec.Mounts)
	assert.Equal(t, []string{"jekyll", "build", "--source", containerSource, "--destination", containerSite}, spec.Args)
	assert.Empty(t, spec.Ports)
	assert.DirExists(t, cfg.SiteDir)
}

func TestBuildContainerReportsMissingImage(t *testing.T) {
	b, _, rt, _ := testBuilder(t, types.JekyllContainer)
	rt.noImage = true
	var stderr bytes.Buffer
	b.Stderr = &stderr

	require.NoError(t, b.Build(context.Background()))
	assert.Len(t, rt.specs, 1)
	assert.Contains(t, stderr.String(), "image jekyll/jekyll:4 not present locally, podman will pull it")
}

func TestServeContainerPublishesPort(t *testing.T) {
	b, _, rt, _ := testBuilder(t, types.JekyllContainer)

	require.NoError(t, b.Serve(context.Background()))
	require.Len(t, rt.specs, 1)
	assert.Equal(t, map[int]int{4000: 4000}, rt.specs[0].Ports)
}

func TestContainerWithoutRuntime(t *testing.T) {
	b, _, _, _ := testBuilder(t, types.JekyllContainer)
	b.detect = func() (container.Runtime, error) { return nil, container.ErrNoRuntime }

	err := b.Build(context.Background())
	assert.True(t, errors.Is(err, container.ErrNoRuntime))
}

func TestBuildRequiresBuildDir(t *testing.T) {
	b, calls, _, cfg := testBuilder(t, types.JekyllNative)
	require.NoError(t, os.RemoveAll(cfg.BuildDir))

	require.Error(t, b.Build(context.Background()))
	assert.Empty(t, *calls)
}

func TestUnknownMode(t *testing.T) {
	b, _, _, _ := testBuilder(t, types.JekyllMode("remote"))
	require.Error(t, b.Build(context.Background()))
}

func TestPrepareBuild(t *testing.T) {
	dir := t.TempDir()
	static := filepath.Join(dir, "docs")
	build := filepath.Join(dir, "_build")
	for rel, content := range map[string]string{
		"_config.yml":           "title: Begrippen\n",
		"assets/css/style.scss": "body {}\n",
		"over.md":               "# Over\n",
	} {
		p := filepath.Join(static, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	require.NoError(t, os.MkdirAll(build, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(build, "over.md"), []byte("oud"), 0o644))

	n, err := PrepareBuild(static, build)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(filepath.Join(build, "over.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Over\n", string(data))
	assert.FileExists(t, filepath.Join(build, "assets", "css", "style.scss"))
}

func TestPrepareBuildNoop(t *testing.T) {
	dir := t.TempDir()

	n, err := PrepareBuild(filepath.Join(dir, "missing"), filepath.Join(dir, "_build"))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = PrepareBuild(dir, dir)
	require.NoError(t, err)
	assert.Zero(t, n)
}
