package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"aircast/internal/config"
)

const prompt = "Enter city name (e.g. Delhi, Mumbai, London): "

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Initialize logger
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	city, err := readCity(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	app := NewApp(cfg, logger, os.Stdout)
	run(ctx, app, city)
}

// run executes the pipeline and reports any failure on the app's output.
// Failures are not reflected in the exit status.
func run(ctx context.Context, app *App, city string) {
	if err := app.Run(ctx, city); err != nil {
		fmt.Fprintln(app.out, "Error:", err)
	}
}

// readCity joins the command-line arguments into a place name, or prompts for
// one on in when there are none
func readCity(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read city name: %w", err)
	}
	return strings.TrimSpace(line), nil
}
