package pacconf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/huanfeng/pacview/pkg/models"
)

// Render writes cfg in pacman.conf syntax. Repository Include directives have
// already been expanded, so every server is written as a Server line.
func Render(w io.Writer, cfg *models.Configuration) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "[%s]\n", optionsSection)
	for _, field := range optionFields {
		values := field.get(&cfg.Options)
		switch field.kind {
		case kindBool:
			// Written as yes/no since bare flags have no '=' and would not
			// parse back.
			fmt.Fprintf(bw, "%s = %s\n", field.key, values[0])
		default:
			for _, v := range values {
				fmt.Fprintf(bw, "%s = %s\n", field.key, v)
			}
		}
	}

	for i := range cfg.Repositories {
		bw.WriteString("\n")
		renderRepository(bw, &cfg.Repositories[i])
	}

	return bw.Flush()
}

// RenderRepository writes a single repository block
func RenderRepository(w io.Writer, repo *models.Repository) error {
	bw := bufio.NewWriter(w)
	renderRepository(bw, repo)
	return bw.Flush()
}

func renderRepository(bw *bufio.Writer, repo *models.Repository) {
	fmt.Fprintf(bw, "[%s]\n", repo.Name)
	for _, field := range repoFields {
		for _, v := range field.get(repo) {
			fmt.Fprintf(bw, "%s = %s\n", field.key, v)
		}
	}
	for _, server := range repo.Servers {
		fmt.Fprintf(bw, "Server = %s\n", server)
	}
}

// LookupOption returns the resolved values of a global directive by its
// pacman.conf name.
func LookupOption(opts *models.Options, directive string) ([]string, bool) {
	for _, field := range optionFields {
		if field.key == directive {
			return field.get(opts), true
		}
	}
	return nil, false
}

// LookupRepository returns the resolved values of a repository directive.
func LookupRepository(repo *models.Repository, directive string) ([]string, bool) {
	if directive == "Server" {
		return repo.Servers, true
	}
	for _, field := range repoFields {
		if field.key == directive {
			return field.get(repo), true
		}
	}
	return nil, false
}

// OptionDirectives returns the names of all recognized global directives.
func OptionDirectives() []string {
	names := make([]string, 0, len(optionFields))
	for _, field := range optionFields {
		names = append(names, field.key)
	}
	return names
}

// RepositoryNames returns repository names in configuration order.
func RepositoryNames(cfg *models.Configuration) []string {
	names := make([]string, 0, len(cfg.Repositories))
	for _, repo := range cfg.Repositories {
		names = append(names, repo.Name)
	}
	return names
}
