package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lookbusy1344/riscv-disasm/browser"
	"github.com/lookbusy1344/riscv-disasm/config"
	"github.com/lookbusy1344/riscv-disasm/riscv"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		hexInput    = flag.String("hex", "", "Hex-encoded instruction bytes, memory order (e.g. 93001000)")
		filePath    = flag.String("file", "", "Raw binary file to disassemble")
		profileName = flag.String("profile", "rv64gc", "Profile preset: rv32gc or rv64gc")
		configPath  = flag.String("config", "", "TOML profile document (overrides -profile)")
		addressStr  = flag.String("address", "0x0", "Start address (hex or decimal)")
		skipData    = flag.Bool("skip-data", false, "Skip undecodable bytes one at a time instead of halting")
		jsonOutput  = flag.Bool("json", false, "Emit one JSON record per line instead of a text listing")
		browserMode = flag.Bool("browser", false, "Open the interactive disassembly browser")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("RISC-V Disassembler %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if (*hexInput == "") == (*filePath == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -hex or -file is required")
		printHelp()
		os.Exit(1)
	}

	input, err := readInput(*hexInput, *filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	profile, cfg, err := resolveProfile(*configPath, *profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	startAddress, err := parseAddress(*addressStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid start address %q: %v\n", *addressStr, err)
		os.Exit(1)
	}

	result := riscv.DecodeStream(context.Background(), profile, input, startAddress, *skipData)

	if *browserMode {
		if err := browser.Run(profile, cfg, result); err != nil {
			fmt.Fprintf(os.Stderr, "Browser error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *jsonOutput {
		if err := writeJSON(os.Stdout, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
	} else {
		writeListing(result, cfg)
	}

	for _, de := range result.Errors {
		fmt.Fprintf(os.Stderr, "decode error at 0x%x: %v\n", de.Address, de)
	}
	if len(result.Errors) > 0 && !*skipData {
		os.Exit(1)
	}
}

// readInput resolves the -hex/-file pair into a memory-order byte
// buffer. Hex text is decoded as typed: the caller is responsible for
// presenting bytes in little-endian memory order, not word order.
func readInput(hexInput, filePath string) ([]byte, error) {
	if hexInput != "" {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' {
				return -1
			}
			return r
		}, hexInput)
		buf, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return buf, nil
	}
	buf, err := os.ReadFile(filePath) // #nosec G304 -- user-specified input path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}
	return buf, nil
}

// resolveProfile builds the decode profile from either a config document
// or a named preset. The returned config carries display preferences for
// the listing and browser; preset runs get the defaults.
func resolveProfile(configPath, preset string) (*riscv.Profile, *config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		p, err := cfg.Profile()
		if err != nil {
			return nil, nil, err
		}
		return p, cfg, nil
	}

	cfg := config.Default()
	switch strings.ToLower(preset) {
	case "rv32gc":
		return riscv.ProfileRV32GC(), cfg, nil
	case "rv64gc":
		return riscv.ProfileRV64GC(), cfg, nil
	}
	return nil, nil, fmt.Errorf("unknown profile %q (want rv32gc or rv64gc)", preset)
}

func parseAddress(s string) (uint64, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// writeListing prints the objdump-style text listing: address, raw
// bytes, mnemonic, operands in tab-separated columns.
func writeListing(result riscv.StreamResult, cfg *config.Config) {
	for _, rec := range result.Records {
		if cfg.Display.ShowBytes {
			fmt.Printf("%x:\t%s\t%s\t%s\n", rec.Address, hex.EncodeToString(rec.Bytes), rec.Mnemonic, rec.Operands)
		} else {
			fmt.Printf("%x:\t%s\t%s\n", rec.Address, rec.Mnemonic, rec.Operands)
		}
	}
}

// jsonRecord is the per-line JSON shape: stable lowercase keys, bytes as
// a hex string rather than base64.
type jsonRecord struct {
	Address  uint64 `json:"address"`
	Bytes    string `json:"bytes"`
	Mnemonic string `json:"mnemonic"`
	Operands string `json:"operands"`
	Size     int    `json:"size"`
	Format   string `json:"format"`
}

func writeJSON(w *os.File, result riscv.StreamResult) error {
	enc := json.NewEncoder(w)
	for _, rec := range result.Records {
		jr := jsonRecord{
			Address:  rec.Address,
			Bytes:    hex.EncodeToString(rec.Bytes),
			Mnemonic: rec.Mnemonic,
			Operands: rec.Operands,
			Size:     rec.Size,
			Format:   rec.Format.String(),
		}
		if err := enc.Encode(jr); err != nil {
			return err
		}
	}
	return nil
}

func printHelp() {
	fmt.Printf(`RISC-V Disassembler %s

Usage: riscv-disasm [options] -hex BYTES
       riscv-disasm [options] -file PATH

Options:
  -help              Show this help message
  -version           Show version information
  -hex BYTES         Hex-encoded instruction bytes in memory order
  -file PATH         Raw binary file to disassemble
  -profile NAME      Profile preset: rv32gc or rv64gc (default: rv64gc)
  -config PATH       TOML profile document (overrides -profile)
  -address ADDR      Start address, hex or decimal (default: 0x0)
  -skip-data         Skip undecodable bytes one at a time instead of halting
  -json              Emit one JSON record per line
  -browser           Open the interactive disassembly browser

Examples:
  # Disassemble a single addi instruction
  riscv-disasm -hex 93001000

  # Disassemble a raw binary with the RV32GC preset
  riscv-disasm -profile rv32gc -file program.bin

  # Disassemble at a load address, skipping embedded data
  riscv-disasm -address 0x80000000 -skip-data -file firmware.bin

  # Use a saved profile document
  riscv-disasm -config rv32imc.toml -hex 0541

  # Browse interactively
  riscv-disasm -browser -file program.bin

Hex input is consumed in memory order (little-endian): the instruction
word 0x00100093 is typed as 93001000.
`, Version)
}
