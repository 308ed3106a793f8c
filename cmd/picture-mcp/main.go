package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/picture-tools-mcp/internal/config"
	"github.com/ironsheep/picture-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("picture-tools-mcp - MCP server for picture transforms")
	fmt.Println()
	fmt.Println("Usage: picture-tools-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>       Load tool defaults from a YAML file")
	fmt.Println("  --init-config <path>  Write the default configuration to path and exit")
	fmt.Println("  --version, -v         Print version information")
	fmt.Println("  --help, -h            Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PICTURE_MCP_CONFIG=<path>      Config file (overridden by --config)")
	fmt.Println("  PICTURE_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func main() {
	configPath := os.Getenv("PICTURE_MCP_CONFIG")

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("picture-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		case "--config", "--init-config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a path\n", args[i])
				os.Exit(2)
			}
			if args[i] == "--init-config" {
				if err := config.CreateDefaultConfigFile(args[i+1]); err != nil {
					fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
					os.Exit(1)
				}
				fmt.Printf("Wrote default configuration to %s\n", args[i+1])
				return
			}
			configPath = args[i+1]
			i++
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n\n", args[i])
			usage()
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
		cfg = loaded
	}

	if logLevel := os.Getenv("PICTURE_MCP_LOG_LEVEL"); logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if cfg.Debug() {
		log.Printf("Picture MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		if configPath != "" {
			log.Printf("Using config %s", configPath)
		}
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
