package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter reads operator answers line by line. The reader and writer are
// injectable so workflows can be driven by a test harness instead of a
// terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter wired to stdin/stdout.
func NewPrompter() *Prompter {
	return NewPrompterFrom(os.Stdin, os.Stdout)
}

// NewPrompterFrom returns a Prompter reading from r and writing to w.
func NewPrompterFrom(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// StdinIsTerminal reports whether stdin is an interactive terminal.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readLine reads one answer, with EOF surfacing as an error.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskLine prints label and returns the trimmed answer.
func (p *Prompter) AskLine(label string) (string, error) {
	fmt.Fprint(p.out, PromptStyle.Render(label)+" ")
	return p.readLine()
}

// AskPath prompts for a directory path. An empty answer means the current
// working directory.
func (p *Prompter) AskPath(label string) (string, error) {
	answer, err := p.AskLine(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return os.Getwd()
	}
	return answer, nil
}

// Confirm asks a yes/no question. Only a trimmed, case-insensitive "y"
// counts as yes; every other answer (including a read failure) is no.
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.AskLine(question)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y")
}

// AskLanguages prompts for a space-separated selection from available,
// accepting either names or 1-based numbers from the displayed list. It
// re-prompts until every token is valid.
func (p *Prompter) AskLanguages(available []string) ([]string, error) {
	for {
		answer, err := p.AskLine("Enter languages to extract (numbers or names, separated by spaces):")
		if err != nil {
			return nil, err
		}

		tokens := strings.Fields(answer)
		if len(tokens) == 0 {
			fmt.Fprintln(p.out, ErrorStyle.Render("Error: no languages given. Please try again."))
			continue
		}

		selected, invalid := resolveLanguageTokens(tokens, available)
		if len(invalid) > 0 {
			fmt.Fprintln(p.out, ErrorStyle.Render(
				fmt.Sprintf("Error: %s is not a valid language. Please try again.", strings.Join(invalid, ", "))))
			continue
		}
		return selected, nil
	}
}

// resolveLanguageTokens maps each token to an entry of available. Numeric
// tokens are 1-based indexes into the list; everything else must match an
// entry verbatim.
func resolveLanguageTokens(tokens, available []string) (selected, invalid []string) {
	for _, token := range tokens {
		if n, err := strconv.Atoi(token); err == nil {
			if n >= 1 && n <= len(available) {
				selected = append(selected, available[n-1])
			} else {
				invalid = append(invalid, token)
			}
			continue
		}
		if containsString(available, token) {
			selected = append(selected, token)
		} else {
			invalid = append(invalid, token)
		}
	}
	return selected, invalid
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
