package extension

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/settings"
)

// ContextServerCommand builds the launch descriptor for serverID (ServerID
// when empty). It installs the server package first when the pinned version
// is missing. Any failure aborts without a descriptor; the settings
// validation error is returned unchanged.
func (e *Extension) ContextServerCommand(ctx context.Context, serverID string) (*Command, error) {
	serverID = serverIDOrDefault(serverID)
	logger := e.logger.With("server", serverID)

	if err := e.ensurePackage(ctx); err != nil {
		return nil, err
	}

	raw, err := e.host.ProjectSettings(ctx, serverID)
	if err != nil {
		return nil, errors.IO(errors.Wrap(err, "loading settings"))
	}
	resolved, err := settings.Resolve(raw)
	if err != nil {
		return nil, err
	}

	cwd, err := e.host.Getwd()
	if err != nil {
		return nil, errors.IO(errors.Wrap(err, "resolving working directory"))
	}

	args := []string{filepath.Join(cwd, filepath.FromSlash(e.serverPath))}
	if resolved.HasServices() {
		args = append(args, ServicesFlag, resolved.Services)
	}

	env := []EnvVar{{Name: EnvAPIToken, Value: resolved.Token}}
	if resolved.HasEndpoint() {
		env = append(env, EnvVar{Name: EnvAPIEndpoint, Value: resolved.Endpoint})
	}

	node, err := e.host.NodeBinaryPath(ctx)
	if err != nil {
		return nil, errors.IO(errors.Wrap(err, "resolving node binary"))
	}

	logger.Debug("built launch command",
		"command", node,
		"script", args[0],
		"services", resolved.Services,
		"endpoint_override", resolved.HasEndpoint(),
	)

	return &Command{
		Command: node,
		Args:    args,
		Env:     env,
	}, nil
}

// ensurePackage installs the pinned package unless it is already present.
func (e *Extension) ensurePackage(ctx context.Context) error {
	spec := e.pkgName + "@" + e.pkgVersion

	installed, ok, err := e.host.InstalledVersion(ctx, e.pkgName)
	if err != nil {
		return errors.Install(errors.Wrapf(err, "checking installed version of %s", e.pkgName))
	}
	if ok && versionMatches(installed, e.pkgVersion) {
		e.logger.Debug("package up to date", "package", spec, "installed", installed)
		return nil
	}

	e.logger.Info("installing server package", "package", spec, "installed", installed)
	if err := e.host.Install(ctx, e.pkgName, e.pkgVersion); err != nil {
		return errors.Install(errors.Wrapf(err, "installing %s", spec))
	}
	return nil
}
