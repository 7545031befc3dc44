package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
	"go-currency-converter/ui"
)

const help = `commands:
  from <CODE>     select the source currency
  to <CODE>       select the target currency
  amount <value>  type an amount, e.g. 1.234,56
  convert         convert the typed amount
  rates           show the current rate table
  help            show this text
  quit            exit`

// terminal writes each display update as one line. out is shared with the
// repl and the bell, so it must be safe for concurrent use.
type terminal struct {
	out io.Writer
}

func (t *terminal) SetText(region ui.Region, text string) {
	fmt.Fprintf(t.out, "%v: %v\n", region, text)
}

func (t *terminal) SetImage(region ui.Region, src string) {
	fmt.Fprintf(t.out, "%v: %v\n", region, src)
}

// bell rings the terminal bell as the audio cue
type bell struct {
	out io.Writer
}

func (b *bell) Play() error {
	_, err := io.WriteString(b.out, "\a")
	return err
}

// repl feeds commands read from in to the controller until quit or EOF
func repl(in io.Reader, out io.Writer, controller *ui.Controller, table *rates.Table) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, help)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		command, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(command) {
		case "":
		case "from":
			controller.SelectSource(domain.Currency(strings.ToUpper(arg)))
		case "to":
			controller.SelectTarget(domain.Currency(strings.ToUpper(arg)))
		case "amount":
			controller.SetInput(arg)
		case "convert":
			controller.ConvertClicked()
		case "rates":
			printRates(out, table)
		case "help":
			fmt.Fprintln(out, help)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q, try help\n", command)
		}
	}
	return scanner.Err()
}

// printRates writes the table in a single Write so it never interleaves with display updates.
func printRates(out io.Writer, table *rates.Table) {
	current, ok := table.Load()
	if !ok {
		fmt.Fprintln(out, "rates: loading")
		return
	}
	codes := make([]string, 0, len(current))
	for c := range current {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)

	var b strings.Builder
	fmt.Fprintf(&b, "rates (%v, per 1 unit in %v):\n", table.Source(), domain.Base)
	for _, c := range codes {
		fmt.Fprintf(&b, "  %v %v\n", c, current[domain.Currency(c)])
	}
	io.WriteString(out, b.String())
}
