package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/glint/internal/logging"
	glinterrors "github.com/aledsdavies/glint/pkgs/errors"
	"github.com/aledsdavies/glint/pkgs/formatters"
	"github.com/aledsdavies/glint/pkgs/languages"
	"github.com/aledsdavies/glint/pkgs/lexer"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitGrammarError     = 3
)

func main() {
	var (
		langName string
		format   string
		encoding string
		tabSize  int
		list     bool
		debug    bool
	)

	root := &cobra.Command{
		Use:   "glint [file]",
		Short: "Syntax-highlight a file to the terminal or HTML",
		Long: `glint tokenizes source text with a grammar-driven lexer and renders the
token stream as colored terminal output or HTML spans.

The language is chosen by --lang, by filename, or guessed from content,
in that order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.SetDebug(debug)

			if list {
				for _, name := range languages.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("expected a file to highlight (or --list)")
			}
			return highlight(cmd, args[0], langName, format, encoding, tabSize)
		},
	}

	root.Flags().StringVar(&langName, "lang", "", "Language name or alias (default: by filename, else guessed)")
	root.Flags().StringVar(&format, "format", "ansi", "Output format: 'ansi' or 'html'")
	root.Flags().StringVar(&encoding, "encoding", "", "Input charset by IANA name (default: UTF-8)")
	root.Flags().IntVar(&tabSize, "tabs", 0, "Expand tabs to this many spaces (0 = keep tabs)")
	root.Flags().BoolVar(&list, "list", false, "List registered languages and exit")
	root.Flags().BoolVar(&debug, "debug", false, "Enable debug output")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func highlight(cmd *cobra.Command, path, langName, format, encoding string, tabSize int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ioError{err}
	}

	lang, err := pickLanguage(path, langName, string(data))
	if err != nil {
		return err
	}

	var opts []lexer.Option
	if encoding != "" {
		opts = append(opts, lexer.WithInputEncoding(encoding))
	}
	if tabSize > 0 {
		opts = append(opts, lexer.WithTabSize(tabSize))
	}
	lx, err := lang.Lexer(opts...)
	if err != nil {
		return err
	}
	stream, err := lx.TokenizeBytes(data)
	if err != nil {
		return err
	}

	var formatter formatters.Formatter
	switch format {
	case "ansi":
		formatter = formatters.NewANSI()
	case "html":
		formatter = formatters.NewHTML()
	default:
		return fmt.Errorf("unsupported format %q, use 'ansi' or 'html'", format)
	}
	return formatter.Format(cmd.OutOrStdout(), stream)
}

// pickLanguage resolves the language: explicit flag, then filename, then a
// content guess.
func pickLanguage(path, langName, text string) (*languages.Language, error) {
	if langName != "" {
		return languages.Get(langName)
	}
	if lang, err := languages.ForFilename(path); err == nil {
		return lang, nil
	}
	return languages.Guess(text)
}

type ioError struct{ err error }

func (e *ioError) Error() string { return fmt.Sprintf("reading input: %v", e.err) }
func (e *ioError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	switch err.(type) {
	case nil:
		return ExitSuccess
	case *ioError:
		return ExitIOError
	case *glinterrors.GlintError:
		return ExitGrammarError
	default:
		return ExitInvalidArguments
	}
}
