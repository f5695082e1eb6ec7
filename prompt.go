package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	promptIndex = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	promptName  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	promptHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var errNoScenarios = errors.New("no scenarios found")

// promptScenario lists names by number and reads lines from in until one
// holds a valid choice. Anything else is ignored.
func promptScenario(in io.Reader, out io.Writer, names []string) (string, error) {
	if len(names) == 0 {
		return "", errNoScenarios
	}

	fmt.Fprintln(out, promptTitle.Render("Welcome to Orbit Simulator! Please select a scenario from the list below using its number."))
	fmt.Fprintln(out)
	for i, name := range names {
		fmt.Fprintf(out, "%s %s\n", promptIndex.Render(strconv.Itoa(i+1)+"."), promptName.Render(name))
	}
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 || n > len(names) {
			fmt.Fprintln(out, promptHint.Render(fmt.Sprintf("Enter a number from 1 to %d.", len(names))))
			continue
		}
		return names[n-1], nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read scenario choice: %w", err)
	}
	return "", io.ErrUnexpectedEOF
}
