// Copyright (c) 2025 Devstack
// Licensed under the MIT License. See LICENSE file in the project root for details.

package docker

import (
	"devstack/cli/internal/certs"
	"devstack/cli/internal/config"
)

// Certificate paths inside the database container. The postgres entrypoint
// reads them via the ssl_* command flags below.
const (
	containerServerKey  = "/var/lib/postgresql/server.key"
	containerServerCert = "/var/lib/postgresql/server.crt"
)

// PostgresRunSpec composes the `docker run` invocation for the local
// database container: credentials from the configuration, the generated
// certificate bundle mounted read-only, SSL forced on, and fixed tuning
// flags sized for a development laptop.
func PostgresRunSpec(cfg config.Config, bundle *certs.Bundle) RunSpec {
	return RunSpec{
		Image:  config.PostgresImage,
		Name:   config.ContainerName,
		Detach: true,
		Env: []string{
			"POSTGRES_DB=" + cfg.DBName,
			"POSTGRES_USER=" + cfg.DBUser,
			"POSTGRES_PASSWORD=" + cfg.DBPassword,
		},
		Mounts: []Mount{
			{Source: bundle.ServerKey, Target: containerServerKey, ReadOnly: true},
			{Source: bundle.ServerCert, Target: containerServerCert, ReadOnly: true},
		},
		Ports: []string{cfg.DBPort + ":5432"},
		Cmd: []string{
			"-c", "ssl=on",
			"-c", "ssl_cert_file=" + containerServerCert,
			"-c", "ssl_key_file=" + containerServerKey,
			"-c", "max_connections=200",
			"-c", "shared_buffers=256MB",
		},
	}
}

// PsqlExecSpec composes a `docker exec` psql invocation against the running
// database container. Interactive sessions get a pseudo-terminal; the seed
// loader passes interactive=false and supplies stdin itself.
func PsqlExecSpec(cfg config.Config, interactive bool) ExecSpec {
	return ExecSpec{
		Container:   config.ContainerName,
		Interactive: true,
		TTY:         interactive,
		Env:         []string{"PGPASSWORD=" + cfg.DBPassword},
		Cmd:         []string{"psql", "-U", cfg.DBUser, "-d", cfg.DBName},
	}
}
