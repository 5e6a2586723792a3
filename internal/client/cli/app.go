package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/studentsapi/internal/client/client"
	"github.com/dmitrijs2005/studentsapi/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	email  string
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewStudentsClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.email != "" {
		return fmt.Sprintf("(%s) ", a.email)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.client.Close() }()

	fmt.Fprintln(a.out, "Welcome to the students CLI (type 'help' for commands)")
	if err := a.client.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Warning: %s\n", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
