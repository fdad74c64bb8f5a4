package config

import "go.trai.ch/pinto/internal/core/domain"

// PyProject is the subset of pyproject.toml pinto reads.
type PyProject struct {
	Project ProjectTable `toml:"project"`
	Tool    ToolTable    `toml:"tool"`
}

// ProjectTable is the PEP 621 [project] table.
type ProjectTable struct {
	Name string `toml:"name"`
}

// ToolTable holds the [tool.*] tables.
type ToolTable struct {
	Poetry PoetryTable          `toml:"poetry"`
	Pinto  domain.ProjectConfig `toml:"pinto"`
}

// PoetryTable is the [tool.poetry] table.
type PoetryTable struct {
	Name string `toml:"name"`
}

// name prefers the poetry name over the PEP 621 one.
func (p *PyProject) name() string {
	if p.Tool.Poetry.Name != "" {
		return p.Tool.Poetry.Name
	}
	return p.Project.Name
}
