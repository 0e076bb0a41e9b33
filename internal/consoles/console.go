package consoles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"log-report/internal/models"
)

const (
	OptionImageRatio     = 1
	OptionPopularBrowser = 2
	OptionHourly         = 3
	OptionAll            = 4
)

const menuPrompt = `Please Enter a number from [1 - 4] for the Report Answer

 1 will print out the image request share
 2 will print out the popular browser
 3 will print out the hits by the hour, one line per hour
 4 will print ALL

 Enter anything else to exit

`

var separator = strings.Repeat("-", 80)

// Console writes report answers framed in separator blocks and drives the
// interactive answer menu.
//
//go:generate mockgen -source=console.go -destination=./mocks/console_mock.go -package=mocks
type Console interface {
	PrintOption(report *models.Report, option int) error
	PrintAll(report *models.Report) error
	// Interact prompts until the input holds something other than 1..4 or ends.
	Interact(report *models.Report) error
	PrintFailure(source string) error
}

type console struct {
	in  io.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) Console {
	return &console{in: in, out: out}
}

func (c *console) PrintOption(report *models.Report, option int) error {
	switch option {
	case OptionImageRatio:
		return c.printAnswer(report.ImageRatioMessage)
	case OptionPopularBrowser:
		return c.printAnswer(report.PopularBrowserMessage)
	case OptionHourly:
		return c.printLines(report.HourlyMessages)
	case OptionAll:
		return c.PrintAll(report)
	default:
		return fmt.Errorf("unknown option %d", option)
	}
}

func (c *console) PrintAll(report *models.Report) error {
	if err := c.printAnswer(report.ImageRatioMessage); err != nil {
		return err
	}
	if err := c.printAnswer(report.PopularBrowserMessage); err != nil {
		return err
	}
	return c.printLines(report.HourlyMessages)
}

func (c *console) Interact(report *models.Report) error {
	scanner := bufio.NewScanner(c.in)
	for {
		if _, err := io.WriteString(c.out, menuPrompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		option, ok := parseOption(scanner.Text())
		if !ok {
			return nil
		}
		if err := c.PrintOption(report, option); err != nil {
			return err
		}
	}
}

func (c *console) PrintFailure(source string) error {
	_, err := fmt.Fprintf(c.out, "Something went wrong, you entered in <%s>, please check your url param for errors\n", source)
	return err
}

func (c *console) printAnswer(text string) error {
	_, err := fmt.Fprintf(c.out, "%s\n\n\n\nAnswer: %s\n\n\n\n%s\n", separator, text, separator)
	return err
}

func (c *console) printLines(lines []string) error {
	var b strings.Builder
	b.WriteString(separator)
	b.WriteString("\n\n\n\nAnswer:\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n\n\n")
	b.WriteString(separator)
	b.WriteString("\n")
	_, err := io.WriteString(c.out, b.String())
	return err
}

func parseOption(input string) (int, bool) {
	option, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || option < OptionImageRatio || option > OptionAll {
		return 0, false
	}
	return option, true
}
