// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container detects a container runtime and runs site tooling
// (Jekyll) inside it when no native installation is wanted.
package container

import (
	"context"
	"io"
	"os/exec"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
)

const (
	binDocker = "docker"
	binPodman = "podman"
)

// ErrNoRuntime is returned when neither docker nor podman is usable.
var ErrNoRuntime = errors.New("no container runtime available")

// Mount binds a host directory into the container.
type Mount struct {
	Source string
	Target string
}

// Spec describes one container run.
type Spec struct {
	Image   string
	Mounts  []Mount
	Workdir string
	// Ports maps host port → container port.
	Ports map[int]int
	Env   []string
	Args  []string
}

// Runtime provides container operations: checking availability, verifying
// images, and running containers.
type Runtime interface {
	// Name returns the runtime name ("docker" or "podman").
	Name() string

	// Available reports whether the runtime binary exists on PATH and
	// responds to an info command.
	Available() bool

	// ImageExists returns nil when the named image exists locally.
	ImageExists(image string) error

	// Run executes spec in a throwaway container, streaming its output.
	// Cancelling ctx stops the container.
	Run(ctx context.Context, spec Spec, stdout, stderr io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunStreaming(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunStreaming(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runtime implements Runtime for a specific container binary. Docker and
// Podman differ only in binary name and the image check subcommand.
type runtime struct {
	bin           string
	imageCheckCmd []string // e.g. ["image", "inspect"] for docker
	exec          executor
}

func (r *runtime) Name() string { return r.bin }

func (r *runtime) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "info") == nil
}

func (r *runtime) ImageExists(image string) error {
	args := make([]string, 0, len(r.imageCheckCmd)+1)
	args = append(args, r.imageCheckCmd...)
	args = append(args, image)

	if err := r.exec.RunSilent(r.bin, args...); err != nil {
		return errors.Wrapf(err, "image %s not found in %s", image, r.bin)
	}
	return nil
}

func (r *runtime) Run(ctx context.Context, spec Spec, stdout, stderr io.Writer) error {
	if spec.Image == "" {
		return errors.New("container image is required")
	}
	if err := r.exec.RunStreaming(ctx, r.bin, runArgs(spec), stdout, stderr); err != nil {
		return errors.Wrapf(err, "running %s container %s", r.bin, spec.Image)
	}
	return nil
}

// runArgs builds the "run" argument list for spec. Ports are emitted in
// ascending host port order.
func runArgs(spec Spec) []string {
	args := []string{"run", "--rm"}
	for _, m := range spec.Mounts {
		args = append(args, "-v", m.Source+":"+m.Target)
	}
	if spec.Workdir != "" {
		args = append(args, "-w", spec.Workdir)
	}
	for _, host := range sortedPorts(spec.Ports) {
		args = append(args, "-p", strconv.Itoa(host)+":"+strconv.Itoa(spec.Ports[host]))
	}
	for _, e := range spec.Env {
		args = append(args, "-e", e)
	}
	args = append(args, spec.Image)
	return append(args, spec.Args...)
}

func sortedPorts(ports map[int]int) []int {
	keys := make([]int, 0, len(ports))
	for k := range ports {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func newDockerRuntime(exec executor) *runtime {
	return &runtime{
		bin:           binDocker,
		imageCheckCmd: []string{"image", "inspect"},
		exec:          exec,
	}
}

func newPodmanRuntime(exec executor) *runtime {
	return &runtime{
		bin:           binPodman,
		imageCheckCmd: []string{"image", "exists"},
		exec:          exec,
	}
}

var defaultExec = &osExecutor{}

// DetectRuntime tries docker first and falls back to podman.
func DetectRuntime() (Runtime, error) {
	return detectRuntime(defaultExec)
}

func detectRuntime(exec executor) (Runtime, error) {
	docker := newDockerRuntime(exec)
	if docker.Available() {
		return docker, nil
	}

	podman := newPodmanRuntime(exec)
	if podman.Available() {
		return podman, nil
	}

	return nil, errors.WithHintf(ErrNoRuntime,
		"install %s or %s, or set jekyll.mode to native", binDocker, binPodman)
}
