package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/smartir/irabi/abi"
	"github.com/smartir/irabi/codec"
	"github.com/smartir/irabi/loader"
)

func main() {
	var (
		abiPath     = flag.String("abi", "", "Path to ABI metadata JSON file")
		wasmPath    = flag.String("wasm", "", "Path to contract wasm binary with embedded metadata")
		method      = flag.String("method", "", "Method to encode a call for")
		out         = flag.String("out", "", "Output format: hex (default) or raw")
		configPath  = flag.String("config", "", "Path to ircall.toml")
		list        = flag.Bool("list", false, "List methods and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			abi.SetLogger(l)
			defer l.Sync()
		}
	}

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.merge(abiPath, wasmPath, out)
	}

	if *abiPath == "" && *wasmPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ircall -abi <meta.json> -method <name> [arg tokens...]")
		fmt.Fprintln(os.Stderr, "       ircall -wasm <contract.wasm> -method <name> [arg tokens...]")
		fmt.Fprintln(os.Stderr, "       ircall -abi <meta.json> -list")
		fmt.Fprintln(os.Stderr, "       ircall -abi <meta.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*abiPath, *wasmPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*abiPath, *wasmPath, *method, *out, flag.Args(), *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(abiPath, wasmPath, method, out string, tokens []string, listOnly bool) error {
	meta, err := loadMetadata(abiPath, wasmPath)
	if err != nil {
		return err
	}

	if listOnly {
		fmt.Printf("ABI version: %d\n\nMethods:\n", meta.ABIVersion)
		for _, m := range meta.Methods {
			fmt.Printf("  %s\n", formatMethod(&m))
		}
		return nil
	}

	if method == "" {
		return fmt.Errorf("no method specified (use -method, or -list to see methods)")
	}

	m := meta.GetMethod(method)
	if m == nil {
		return fmt.Errorf("method %q not found in metadata", method)
	}

	payload, err := m.EncodeParams(tokens, codec.New())
	if err != nil {
		return err
	}

	switch out {
	case "", "hex":
		fmt.Printf("%x\n", payload)
	case "raw":
		if _, err := os.Stdout.Write(payload); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", out)
	}
	return nil
}

// loadMetadata reads metadata from a JSON file or from a contract wasm
// binary's embedded custom section.
func loadMetadata(abiPath, wasmPath string) (*abi.Metadata, error) {
	if abiPath != "" {
		data, err := os.ReadFile(abiPath)
		if err != nil {
			return nil, fmt.Errorf("read abi file: %w", err)
		}
		return abi.FromJSON(data)
	}

	data, err := os.ReadFile(wasmPath)
	if err != nil {
		return nil, fmt.Errorf("read wasm file: %w", err)
	}
	return loader.ExtractMetadata(context.Background(), data)
}

func formatMethod(m *abi.MethodMeta) string {
	params := make([]string, len(m.Inputs))
	for i, in := range m.Inputs {
		params[i] = in.Type
	}
	sig := m.Name + "(" + strings.Join(params, ", ") + ")"
	if len(m.Outputs) > 0 {
		sig += " -> " + m.Outputs[0].Type
	}
	if m.Kind == abi.MethodConstructor {
		sig += "  [constructor]"
	}
	return sig
}
