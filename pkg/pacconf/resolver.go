// Package pacconf resolves pacman.conf style files into a validated
// models.Configuration.
//
// Every directive inside a section is collected in file order. Scalar
// directives then take their first occurrence and list directives take all
// of them. Repository Include files are read as mirrorlists and their servers
// come before any Server lines of the same section.
package pacconf

import (
	"github.com/huanfeng/pacview/internal/errors"
	"github.com/huanfeng/pacview/pkg/models"
	"github.com/huanfeng/pacview/pkg/utils"
	"github.com/spf13/afero"
)

// Resolver reads configuration files from a filesystem. It keeps no state
// between calls and may be shared by goroutines.
type Resolver struct {
	fs     afero.Fs
	logger utils.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithFs sets the filesystem used for the root file and mirrorlists
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger utils.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver reading from the OS filesystem
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:     afero.NewOsFs(),
		logger: utils.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse resolves the file at path using the OS filesystem
func Parse(path string) (*models.Configuration, error) {
	return NewResolver().Parse(path)
}

// Parse reads the file at path and resolves it. The first error aborts the
// whole parse and no partial configuration is returned.
func (r *Resolver) Parse(path string) (*models.Configuration, error) {
	log := r.logger.WithField("file", path)

	reg, err := r.readSections(path, log)
	if err != nil {
		return nil, err
	}

	options, err := resolveOptions(reg.get(optionsSection), log)
	if err != nil {
		return nil, err
	}

	repos := make([]models.Repository, 0, len(reg.order))
	for _, sec := range reg.order {
		if sec.name == optionsSection {
			continue
		}
		repo, err := r.resolveRepository(sec, log)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}

	log.Debug("resolved %d repositories", len(repos))

	return &models.Configuration{
		Options:      options,
		Repositories: repos,
	}, nil
}

// readSections groups the lines of the root file into sections.
func (r *Resolver) readSections(path string, log utils.Logger) (*registry, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, errors.NewIOError(path, err)
	}
	defer f.Close()

	reg := newRegistry()
	var current *section
	err = scanLines(f, func(line string) {
		if name, ok := parseHeader(line); ok {
			var seen bool
			current, seen = reg.open(name)
			if seen {
				log.Debug("merging repeated section [%s]", name)
			}
			return
		}

		key, value, ok := parseDirective(line)
		if !ok {
			log.Debug("ignoring line without '=': %s", line)
			return
		}
		if current == nil {
			log.Debug("ignoring %s outside of any section", key)
			return
		}
		current.add(key, value)
	})
	if err != nil {
		return nil, errors.NewIOError(path, err)
	}

	return reg, nil
}

// resolveOptions applies the [options] section over the defaults. A missing
// section yields the defaults unchanged.
func resolveOptions(sec *section, log utils.Logger) (models.Options, error) {
	options := models.DefaultOptions()
	if sec == nil {
		return options, nil
	}

	known := make(map[string]bool, len(optionFields))
	for _, field := range optionFields {
		known[field.key] = true

		values, ok := sec.all(field.key)
		if !ok {
			continue
		}
		if field.policy == firstWins {
			values = values[:1]
		}
		if err := field.set(&options, values); err != nil {
			return models.Options{}, err
		}
	}

	for _, key := range sec.keys {
		if !known[key] {
			log.Debug("ignoring unknown option %s", key)
		}
	}

	return options, nil
}

// resolveRepository builds one repository from its section.
func (r *Resolver) resolveRepository(sec *section, log utils.Logger) (models.Repository, error) {
	repo := models.NewRepository(sec.name)

	includes, _ := sec.all("Include")
	for _, path := range includes {
		servers, err := r.readMirrorlist(sec.name, path)
		if err != nil {
			return models.Repository{}, err
		}
		log.Debug("[%s] %d servers from %s", sec.name, len(servers), path)
		repo.Servers = append(repo.Servers, servers...)
	}

	if servers, ok := sec.all("Server"); ok {
		repo.Servers = append(repo.Servers, servers...)
	}

	for _, field := range repoFields {
		value, ok := sec.first(field.key)
		if !ok {
			continue
		}
		if err := field.set(&repo, value); err != nil {
			return models.Repository{}, err
		}
	}

	return repo, nil
}

// readMirrorlist returns every non-blank, non-comment line of path.
func (r *Resolver) readMirrorlist(sectionName, path string) ([]string, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, errors.NewIncludeNotFoundError(sectionName, path, err)
	}
	defer f.Close()

	var servers []string
	if err := scanLines(f, func(line string) {
		servers = append(servers, line)
	}); err != nil {
		return nil, errors.NewIOError(path, err)
	}
	return servers, nil
}
