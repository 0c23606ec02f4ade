// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jekyll builds and serves the generated site with Jekyll, either
// through a local bundler installation or inside a container.
package jekyll

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/container"
	"github.com/pdiddy/termsite/internal/logging"
	"github.com/pdiddy/termsite/pkg/types"
)

// Paths inside the container.
const (
	containerSource = "/srv/jekyll"
	containerSite   = "/srv/site"
)

// commandRunner runs a native command.
type commandRunner func(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error

func runCommand(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Builder runs Jekyll on the build directory.
type Builder struct {
	cfg    types.JekyllConfig
	logger *zap.Logger

	Stdout io.Writer
	Stderr io.Writer

	run    commandRunner
	detect func() (container.Runtime, error)
}

// New creates a Builder writing Jekyll output to stdout and stderr.
func New(cfg types.JekyllConfig, logger *zap.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		logger: logging.OrNop(logger),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		run:    runCommand,
		detect: container.DetectRuntime,
	}
}

// Build renders BuildDir into SiteDir.
func (b *Builder) Build(ctx context.Context) error {
	return b.jekyll(ctx, "build", nil)
}

// Serve runs the Jekyll development server until ctx is cancelled.
func (b *Builder) Serve(ctx context.Context) error {
	err := b.jekyll(ctx, "serve", []string{"--host", "0.0.0.0", "--port", strconv.Itoa(b.cfg.Port)})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (b *Builder) jekyll(ctx context.Context, command string, extra []string) error {
	src, err := filepath.Abs(b.cfg.BuildDir)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", b.cfg.BuildDir)
	}
	dst, err := filepath.Abs(b.cfg.SiteDir)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", b.cfg.SiteDir)
	}
	if _, err := os.Stat(src); err != nil {
		return errors.WithHint(errors.Wrapf(err, "build directory %s", src),
			"run `termsite generate` first")
	}

	b.logger.Info("running jekyll",
		zap.String(logging.FieldStage, command),
		zap.String(logging.FieldRuntime, string(b.cfg.Mode)),
		zap.String(logging.FieldSource, src),
		zap.String("destination", dst))

	switch b.cfg.Mode {
	case types.JekyllContainer:
		return b.inContainer(ctx, command, src, dst, extra)
	case types.JekyllNative, "":
		args := append([]string{"exec", "jekyll", command, "--source", src, "--destination", dst}, extra...)
		if err := b.run(ctx, "bundle", args, b.Stdout, b.Stderr); err != nil {
			return errors.WithHint(errors.Wrapf(err, "jekyll %s", command),
				"run `bundle install` or set jekyll.mode to container")
		}
		return nil
	}
	return errors.Newf("unknown jekyll mode %q", b.cfg.Mode)
}

func (b *Builder) inContainer(ctx context.Context, command, src, dst string, extra []string) error {
	rt, err := b.detect()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	spec := container.Spec{
		Image: b.cfg.Image,
		Mounts: []container.Mount{
			{Source: src, Target: containerSource},
			{Source: dst, Target: containerSite},
		},
		Workdir: containerSource,
		Args: append([]string{"jekyll", command,
			"--source", containerSource, "--destination", containerSite}, extra...),
	}
	if command == "serve" {
		spec.Ports = map[int]int{b.cfg.Port: b.cfg.Port}
	}
	b.logger.Debug("container runtime selected", zap.String(logging.FieldRuntime, rt.Name()))
	if err := rt.ImageExists(b.cfg.Image); err != nil {
		fmt.Fprintf(b.Stderr, "image %s not present locally, %s will pull it\n", b.cfg.Image, rt.Name())
	}
	return rt.Run(ctx, spec, b.Stdout, b.Stderr)
}

// PrepareBuild copies every file of staticDir into buildDir, replacing files
// that already exist there, and returns the number of files copied. A
// missing staticDir copies nothing.
func PrepareBuild(staticDir, buildDir string) (int, error) {
	if staticDir == "" || filepath.Clean(staticDir) == filepath.Clean(buildDir) {
		return 0, nil
	}
	if _, err := os.Stat(staticDir); errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}

	files, err := doublestar.Glob(os.DirFS(staticDir), "**", doublestar.WithFilesOnly())
	if err != nil {
		return 0, errors.Wrapf(err, "listing %s", staticDir)
	}
	for _, rel := range files {
		if err := copyFile(filepath.Join(staticDir, filepath.FromSlash(rel)),
			filepath.Join(buildDir, filepath.FromSlash(rel))); err != nil {
			return 0, err
		}
	}
	return len(files), nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", dst)
	}
	return errors.Wrapf(os.WriteFile(dst, data, 0o644), "writing %s", dst)
}
