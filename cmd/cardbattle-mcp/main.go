package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	cbmcp "github.com/peterkuimelis/cardbattle/internal/mcp"
)

func main() {
	rules := flag.String("rules", "", "path to rules YAML file (built-in defaults if empty)")
	cards := flag.String("content", "", "path to card content YAML file (built-in tables if empty)")
	flag.Parse()

	cbmcp.SetRulesFile(*rules)
	cbmcp.SetContentFile(*cards)

	s := server.NewMCPServer("cardbattle", "1.0.0")
	cbmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
