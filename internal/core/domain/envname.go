package domain

import (
	"crypto/sha256"
	"encoding/base64"
	"path/filepath"
	"regexp"
	"strings"
)

const baseSuffix = "-base"

var (
	envNamePattern     = regexp.MustCompile(`(?m)^name: (.+)$`)
	unsafeVenvNameChar = regexp.MustCompile("[ $`!*@\"\\\\\r\n\t]")
)

// maxSanitizedNameLen matches the truncation poetry applies to venv name prefixes.
const maxSanitizedNameLen = 42

// ParseEnvName extracts the value of the first top-level "name: " line of an
// environment file.
func ParseEnvName(content []byte) (string, error) {
	m := envNamePattern.FindSubmatch(content)
	if m == nil {
		return "", ErrMissingEnvName
	}
	name := strings.TrimSpace(string(m[1]))
	if name == "" {
		return "", ErrMissingEnvName
	}
	return name, nil
}

// NormalizeEnvName specializes a shared "<prefix>-base" environment name for a project:
// the trailing "base" is replaced with the project name. Any other name is returned as is.
func NormalizeEnvName(envName, projectName string) string {
	if !HasBaseSuffix(envName) {
		return envName
	}
	return strings.TrimSuffix(envName, "base") + projectName
}

// HasBaseSuffix reports whether envName ends in "-base".
func HasBaseSuffix(envName string) bool {
	return strings.HasSuffix(envName, baseSuffix)
}

// IsEnvironmentFile reports whether ref looks like a YAML environment file rather than
// an environment name.
func IsEnvironmentFile(ref string) bool {
	switch filepath.Ext(ref) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// GenerateVenvName returns the name poetry gives the virtualenv of a project living at dir.
// dir should already be absolute with symlinks resolved.
func GenerateVenvName(projectName, dir string) string {
	sanitized := unsafeVenvNameChar.ReplaceAllString(strings.ToLower(projectName), "_")
	if len(sanitized) > maxSanitizedNameLen {
		sanitized = sanitized[:maxSanitizedNameLen]
	}

	sum := sha256.Sum256([]byte(filepath.Clean(dir)))
	h := base64.URLEncoding.EncodeToString(sum[:])[:8]

	return sanitized + "-" + h
}

// DistributionName maps a project name to the form used in installed metadata directories.
func DistributionName(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_")
}

// CondaPackageName maps a project name to the form conda lists pip-installed packages under.
func CondaPackageName(projectName string) string {
	return strings.ReplaceAll(projectName, "_", "-")
}
