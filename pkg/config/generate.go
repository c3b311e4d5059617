package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders the default configuration as TOML with
// every value commented out, ready to drop into the user config dir.
func GenerateConfigContent() (string, error) {
	raw, err := gotoml.Marshal(tomlView(Default()))
	if err != nil {
		return "", err
	}
	return commentOutConfigValues(string(raw)), nil
}

// tomlView rebuilds the config with toml tags so go-toml renders the
// same key names koanf reads.
func tomlView(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"bundle": map[string]interface{}{
			"file":       cfg.Bundle.File,
			"versions":   cfg.Bundle.Versions,
			"executable": cfg.Bundle.Executable,
			"overwrite":  cfg.Bundle.Overwrite,
		},
		"install": map[string]interface{}{
			"program": cfg.Install.Program,
			"shell":   cfg.Install.Shell,
			"confirm": cfg.Install.Confirm,
		},
	}
}

// commentOutConfigValues takes TOML content and comments out every
// assignment line, leaving blanks, comments, and section headers as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
