// Package commands implements CLI command handlers for ikuai-ipgroups.
//
// Each command implements the Runner interface and delegates business logic
// to the service layer.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and validate configuration
//   - Run(): Execute command using service layer
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - generate: Fetch sources and write the address group files
//   - check-config: Validate the configuration and print the pipelines
//   - serve: Run the preview API server
//
// # Example Usage
//
//	cmd := commands.CreateGenerateCommand()
//	if err := cmd.Init([]string{"-pipeline", "cn_ipv4"}, ctx); err != nil {
//	    log.Fatalf("Failed to initialize command: %v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("Failed to run command: %v", err)
//	}
package commands
