package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"menuboard/internal/client"
	"menuboard/internal/config"
)

// menuctl is a terminal front end for the menu service: it renders the
// menu as a sortable table and drives the single-row price-edit workflow.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalNotifier prints the editor's user-facing alerts.
type terminalNotifier struct{}

func (terminalNotifier) Alert(message string) {
	fmt.Printf("!! %s\n", message)
}

func run() error {
	var (
		serverURL string
		prefix    string
		logLevel  string
	)
	flag.StringVar(&serverURL, "server", "http://localhost:4000", "menu server origin")
	flag.StringVar(&prefix, "prefix", "/api/menu", "route prefix the server is configured with")
	flag.StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := config.NewLogger(config.LoggerConfig{Level: logLevel, Format: "console"})

	ctx := context.Background()
	api := client.New(serverURL, prefix, logger)
	editor := client.NewEditor(api, terminalNotifier{}, logger)

	if err := editor.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to fetch menu: %w", err)
	}

	render(editor)
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt(editor))
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, arg := splitCommand(line)
		switch command {
		case "list":
			if err := editor.Refresh(ctx); err != nil {
				fmt.Println("failed to refresh menu:", err)
				continue
			}
			render(editor)
		case "sort":
			editor.SortBy(arg)
			render(editor)
		case "edit":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("usage: edit <id>")
				continue
			}
			if !editor.StartEdit(id) {
				fmt.Println("no menu item with id", id)
				continue
			}
			// The table re-fetches whenever the editing row changes
			if err := editor.Refresh(ctx); err != nil {
				fmt.Println("failed to refresh menu:", err)
			}
			fmt.Printf("editing item %d, current value %q\n", id, editor.WorkingValue())
		case "set":
			editor.Input(arg)
		case "save":
			_ = editor.Save(ctx) // failures are logged; the row stays editable
			render(editor)
		case "quit", "exit":
			return nil
		case "help":
			printHelp()
		default:
			fmt.Println("unknown command:", command)
			printHelp()
		}
	}

	return scanner.Err()
}

// splitCommand separates a command word from its argument, keeping the
// argument verbatim so typed prices keep their formatting.
func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// prompt shows the editing state so it is always clear which row is open.
func prompt(editor *client.Editor) string {
	if id, editing := editor.Editing(); editing {
		return fmt.Sprintf("menu[editing %d]> ", id)
	}
	return "menu> "
}

// render prints the menu table with the current sort and editing state.
func render(editor *client.Editor) {
	sortColumn, sortOrder := editor.SortState()
	marker := map[client.SortOrder]string{
		client.SortAsc:  " ^",
		client.SortDesc: " v",
	}

	header := func(name string) string {
		if name == sortColumn {
			return strings.ToUpper(name) + marker[sortOrder]
		}
		return strings.ToUpper(name)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		header("id"), header("name"), header("category"),
		header("label"), header("price"), header("description"), header("image"))

	editingID, editing := editor.Editing()
	for _, item := range editor.Rows() {
		price := item.Price
		if editing && item.ID == editingID {
			price = fmt.Sprintf("[%s]", editor.WorkingValue())
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, item.Category, item.Label, price, item.Description, item.Image)
	}
	w.Flush()
}

func printHelp() {
	fmt.Println(`commands:
  list              refresh and print the menu
  sort <column>     toggle sorting (id, name, category, label, price, description, image)
  edit <id>         open a row's price for editing
  set <value>       change the in-progress price text
  save              validate and submit the edited price
  quit              exit`)
}
