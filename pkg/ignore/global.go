package ignore

import (
	"os"
	"path/filepath"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"
)

// globalExcludesPath locates the user's global git excludes file:
// core.excludesFile from the global git config when set, otherwise git's
// documented defaults under XDG_CONFIG_HOME or ~/.config.
func globalExcludesPath() string {
	if cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil {
		if p := cfg.Raw.Section("core").Option("excludesfile"); p != "" {
			return expandHome(p)
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
