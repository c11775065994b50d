// Package prompt reads validated answers from a line-oriented terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jgoulah/bikeshare/pkg/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a prompter over the given input and output
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Raw prints question and returns the next input line without its line ending.
// Lines of any length are accepted. It returns io.EOF once input is exhausted.
func (p *Prompter) Raw(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Line is Raw with surrounding space removed
func (p *Prompter) Line(question string) (string, error) {
	line, err := p.Raw(question)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose asks until the lower-cased answer is one of allowed, printing invalid after each miss
func (p *Prompter) Choose(question string, allowed []string, invalid string) (string, error) {
	for {
		answer, err := p.Line(question)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		if slices.Contains(allowed, answer) {
			return answer, nil
		}
		fmt.Fprintln(p.out, invalid)
	}
}

// YesNo asks until the answer is "yes" or "no"
func (p *Prompter) YesNo(question, invalid string) (bool, error) {
	answer, err := p.Choose(question, []string{"yes", "no"}, invalid)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// Filters asks for the city, month and day to analyze
func (p *Prompter) Filters() (models.Selection, error) {
	var sel models.Selection
	var err error

	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	sel.City, err = p.Choose(
		fmt.Sprintf("Would you like to see data for %s?", titleList(models.CityKeys(), "or")),
		models.CityKeys(),
		"\nSorry, please input a valid city!",
	)
	if err != nil {
		return sel, err
	}

	sel.Month, err = p.Choose(
		fmt.Sprintf("\nWould you like to filter the data by which month - %s? Type \"all\" for no time filter.", titleList(models.Months[:], "or")),
		append(models.Months[:], models.All),
		"\nSorry, please input a valid month!",
	)
	if err != nil {
		return sel, err
	}

	sel.Day, err = p.Choose(
		fmt.Sprintf("\nWould you like to filter the data by which day - %s? Type \"all\" for no time filter.", titleList(models.Days[:], "or")),
		append(models.Days[:], models.All),
		"\nSorry, please input a valid day of week!",
	)
	if err != nil {
		return sel, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return sel, nil
}

// Title formats a lower-case key for display, e.g. "new york city" -> "New York City"
func Title(s string) string {
	return title.String(s)
}

// titleList renders names as "A, B, or C"
func titleList(names []string, conj string) string {
	titled := make([]string, len(names))
	for i, n := range names {
		titled[i] = Title(n)
	}
	if len(titled) < 2 {
		return strings.Join(titled, "")
	}
	return strings.Join(titled[:len(titled)-1], ", ") + ", " + conj + " " + titled[len(titled)-1]
}
