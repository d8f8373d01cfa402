package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/store"
)

// Runner coordinates MCP server startup. The server speaks over stdio.
type Runner struct {
	Persistence store.Persistence
	Preferences *preferences.Preferences
	Name        string
	Version     string
}

// Run starts the Model Context Protocol server using stdio transport.
func Run(ctx context.Context, persistence store.Persistence, prefs *preferences.Preferences) error {
	r := Runner{
		Persistence: persistence,
		Preferences: prefs,
		Name:        "clocker",
		Version:     "dev",
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with every resource and tool registered.
func (r Runner) NewServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "clocker"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and edit the world clock panel: list timezones with their current times, add or remove rows and set notes."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Persistence, r.Preferences)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("mcp runner requires persistence")
	}
	stdio := server.NewStdioServer(r.NewServer())
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
