// Package languages holds the bundled grammars and the registry used to look
// them up by name, alias, or filename, or to guess one from text content.
// Grammars here are plain data consumed by the engine; the engine itself
// knows nothing about them.
package languages

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aledsdavies/glint/internal/logging"
	glinterrors "github.com/aledsdavies/glint/pkgs/errors"
	"github.com/aledsdavies/glint/pkgs/grammar"
	"github.com/aledsdavies/glint/pkgs/lexer"
)

var log = logging.DefaultLogger.WithField(logging.Subsys, "languages")

// Language pairs a grammar with its registry metadata. The grammar is
// compiled once, on first use, and the compiled form is shared by every
// Lexer built from it.
type Language struct {
	Name      string
	Aliases   []string
	Filenames []string
	Grammar   *grammar.Grammar

	compileOnce sync.Once
	compiled    *grammar.Compiled
	compileErr  error
}

// Compiled returns the language's compiled grammar, compiling it on first
// call. Compile errors are sticky: every later call reports the same error.
func (l *Language) Compiled() (*grammar.Compiled, error) {
	l.compileOnce.Do(func() {
		l.compiled, l.compileErr = grammar.Compile(l.Grammar)
	})
	return l.compiled, l.compileErr
}

// Lexer builds a lexer for this language with the given options.
func (l *Language) Lexer(opts ...lexer.Option) (*lexer.Lexer, error) {
	compiled, err := l.Compiled()
	if err != nil {
		return nil, err
	}
	return lexer.New(compiled, opts...)
}

var (
	registryMu sync.RWMutex
	byName     = map[string]*Language{}
	all        []*Language
)

// Register adds a language to the registry under its name and aliases.
// Later registrations win name collisions, so callers can shadow a bundled
// language with their own.
func Register(l *Language) {
	registryMu.Lock()
	defer registryMu.Unlock()
	byName[strings.ToLower(l.Name)] = l
	for _, alias := range l.Aliases {
		byName[strings.ToLower(alias)] = l
	}
	all = append(all, l)
	log.WithField("language", l.Name).Debug("Registered language")
}

// Get looks a language up by name or alias, case-insensitively.
func Get(name string) (*Language, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if l, ok := byName[strings.ToLower(name)]; ok {
		return l, nil
	}
	return nil, glinterrors.NewLanguageNotFoundError(name, namesLocked())
}

// ForFilename picks the language whose filename patterns match the path's
// base name.
func ForFilename(path string) (*Language, error) {
	base := filepath.Base(path)
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, l := range all {
		for _, pattern := range l.Filenames {
			if ok, _ := filepath.Match(pattern, base); ok {
				return l, nil
			}
		}
	}
	return nil, glinterrors.NewLanguageNotFoundError(base, namesLocked())
}

// Guess ranks every registered language by its confidence score for the text
// and returns the best. Ties break alphabetically by name so the result is
// deterministic. Languages without an AnalyzeText hook score 0 and can never
// win over one with an opinion.
func Guess(text string) (*Language, error) {
	registryMu.RLock()
	candidates := append([]*Language(nil), all...)
	registryMu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})

	var best *Language
	bestScore := 0.0
	for _, l := range candidates {
		lx, err := l.Lexer()
		if err != nil {
			log.WithField("language", l.Name).WithError(err).
				Warn("Skipping language with broken grammar during guess")
			continue
		}
		score := lx.EstimateConfidence(text)
		if score > bestScore {
			best, bestScore = l, score
		}
	}
	if best == nil {
		return nil, glinterrors.NewLanguageNotFoundError("<guess>", Names())
	}
	return best, nil
}

// Names lists registered language names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(all))
	for _, l := range all {
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}
