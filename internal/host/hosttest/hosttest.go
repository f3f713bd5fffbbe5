// Package hosttest provides in-memory host capabilities for tests.
package hosttest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/host"
)

// Host is a deterministic host.Host. Zero values behave as: package not
// installed, installs succeed, no settings, node at /usr/bin/node.
type Host struct {
	// Installed maps package names to installed versions.
	Installed map[string]string
	// Settings maps server ids to raw settings values.
	Settings map[string][]byte
	// Node is returned by NodeBinaryPath. Defaults to /usr/bin/node.
	Node string
	// Dir is returned by Getwd. Defaults to /project.
	Dir string

	LookupErr   error
	InstallErr  error
	SettingsErr error
	NodeErr     error
	DirErr      error

	// Installs records every Install call as name@version.
	Installs []string
}

var _ host.Host = (*Host)(nil)

// InstalledVersion implements host.PackageManager.
func (h *Host) InstalledVersion(_ context.Context, name string) (string, bool, error) {
	if h.LookupErr != nil {
		return "", false, h.LookupErr
	}
	v, ok := h.Installed[name]
	return v, ok, nil
}

// Install implements host.PackageManager. Successful installs update Installed.
func (h *Host) Install(_ context.Context, name, version string) error {
	h.Installs = append(h.Installs, name+"@"+version)
	if h.InstallErr != nil {
		return h.InstallErr
	}
	if h.Installed == nil {
		h.Installed = make(map[string]string)
	}
	h.Installed[name] = version
	return nil
}

// ProjectSettings implements host.SettingsStore.
func (h *Host) ProjectSettings(_ context.Context, serverID string) ([]byte, error) {
	if h.SettingsErr != nil {
		return nil, h.SettingsErr
	}
	return h.Settings[serverID], nil
}

// NodeBinaryPath implements host.Runtime.
func (h *Host) NodeBinaryPath(context.Context) (string, error) {
	if h.NodeErr != nil {
		return "", h.NodeErr
	}
	if h.Node == "" {
		return "/usr/bin/node", nil
	}
	return h.Node, nil
}

// Getwd implements host.WorkDir.
func (h *Host) Getwd() (string, error) {
	if h.DirErr != nil {
		return "", h.DirErr
	}
	if h.Dir == "" {
		return "/project", nil
	}
	return h.Dir, nil
}

// MockPackageManager is a testify mock of host.PackageManager for tests that
// assert on call order and arguments.
type MockPackageManager struct {
	mock.Mock
}

var _ host.PackageManager = (*MockPackageManager)(nil)

// NewMockPackageManager creates a mock whose expectations are asserted on cleanup.
func NewMockPackageManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPackageManager {
	m := &MockPackageManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// InstalledVersion implements host.PackageManager.
func (m *MockPackageManager) InstalledVersion(ctx context.Context, name string) (string, bool, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Bool(1), args.Error(2)
}

// Install implements host.PackageManager.
func (m *MockPackageManager) Install(ctx context.Context, name, version string) error {
	args := m.Called(ctx, name, version)
	return args.Error(0)
}
