// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinto/internal/adapters/conda"
	_ "go.trai.ch/pinto/internal/adapters/config"
	_ "go.trai.ch/pinto/internal/adapters/envvar"
	_ "go.trai.ch/pinto/internal/adapters/fs"
	_ "go.trai.ch/pinto/internal/adapters/logger"
	_ "go.trai.ch/pinto/internal/adapters/poetry"
	_ "go.trai.ch/pinto/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/pinto/internal/app"
	_ "go.trai.ch/pinto/internal/engine/environment"
)
