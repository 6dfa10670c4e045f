package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/robbiew/menucfg/internal/codec"
	"github.com/robbiew/menucfg/internal/editor"
	"github.com/robbiew/menucfg/internal/menu"
	"github.com/robbiew/menucfg/internal/settings"
	"github.com/robbiew/menucfg/internal/store"
	"github.com/robbiew/menucfg/internal/tui"
)

const version = "0.1.0"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "menucfg",
})

func main() {
	args := os.Args[1:]

	cmd := "edit"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "init":
		runInit(args)
	case "edit":
		runEdit(args)
	case "show":
		runShow(args)
	case "convert":
		runConvert(args)
	case "snapshot":
		runSnapshot(args)
	case "restore":
		runRestore(args)
	case "snapshots":
		runSnapshots(args)
	case "delete":
		runDelete(args)
	case "version":
		fmt.Printf("menucfg %s\n", version)
	case "help", "-h", "--help":
		usage()
	default:
		// a bare settings file path opens the editor on it
		if fileExists(cmd) {
			runEdit([]string{"-f", cmd})
			return
		}
		fmt.Printf("Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: menucfg [command] [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init       Create a settings file with default values")
	fmt.Println("  edit       Open the interactive settings editor (default)")
	fmt.Println("  show       Print every settings leaf with its type and value")
	fmt.Println("  convert    Re-encode a settings file into another format")
	fmt.Println("  snapshot   Store the current settings in the snapshot database")
	fmt.Println("  restore    Write a stored snapshot back to a settings file")
	fmt.Println("  snapshots  List stored snapshots")
	fmt.Println("  delete     Delete a stored snapshot")
	fmt.Println("  version    Print the version")
	fmt.Println()
	fmt.Println("The settings format follows the file extension: .toml, .yaml,")
	fmt.Println(".json or .cbor. Run a command with -h for its flags.")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// loadController builds the editing controller for a settings file,
// starting from defaults when the file does not exist yet.
func loadController(path string) (*editor.Controller, error) {
	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}

	ctrl, err := editor.New(settings.Default(),
		editor.WithTitle("Settings"),
		editor.WithCodec(c),
	)
	if err != nil {
		return nil, err
	}

	if fileExists(path) {
		if err := ctrl.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return ctrl, nil
}

func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	file := fs.String("f", "settings.toml", "settings file to create")
	force := fs.Bool("force", false, "overwrite an existing file")
	fs.Parse(args)

	if fileExists(*file) && !*force {
		logger.Error("file already exists, use -force to overwrite", "file", *file)
		os.Exit(1)
	}

	c, err := codec.ForPath(*file)
	if err != nil {
		logger.Error("unsupported settings format", "file", *file, "err", err)
		os.Exit(1)
	}

	data, err := c.Marshal(settings.Default())
	if err != nil {
		logger.Error("failed to encode settings", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*file, data, 0644); err != nil {
		logger.Error("failed to write settings", "file", *file, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default settings to %s (%s)\n", *file, c.Name())
}

func runEdit(args []string) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	file := fs.String("f", "settings.toml", "settings file to edit")
	fs.Parse(args)

	ctrl, err := loadController(*file)
	if err != nil {
		logger.Error("failed to open settings", "file", *file, "err", err)
		os.Exit(1)
	}

	if err := tui.RunEditorTUI(ctrl, *file); err != nil {
		logger.Error("editor failed", "err", err)
		os.Exit(1)
	}
}

func runShow(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	file := fs.String("f", "settings.toml", "settings file to read")
	fs.Parse(args)

	ctrl, err := loadController(*file)
	if err != nil {
		logger.Error("failed to open settings", "file", *file, "err", err)
		os.Exit(1)
	}

	err = menu.Walk(ctrl.Root(), func(path string, d menu.FieldDescriptor) error {
		fmt.Printf("%-32s %-18s %s\n", path, d.Kind.String(), d.Value)
		return nil
	})
	if err != nil {
		logger.Error("failed to walk settings", "err", err)
		os.Exit(1)
	}
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	in := fs.String("in", "", "settings file to read")
	out := fs.String("out", "", "settings file to write")
	fs.Parse(args)

	if *in == "" || *out == "" {
		logger.Error("convert requires -in and -out")
		os.Exit(1)
	}

	inCodec, err := codec.ForPath(*in)
	if err != nil {
		logger.Error("unsupported input format", "file", *in, "err", err)
		os.Exit(1)
	}
	outCodec, err := codec.ForPath(*out)
	if err != nil {
		logger.Error("unsupported output format", "file", *out, "err", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("failed to read settings", "file", *in, "err", err)
		os.Exit(1)
	}

	var s settings.Settings
	if err := inCodec.Unmarshal(data, &s); err != nil {
		logger.Error("failed to decode settings", "file", *in, "err", err)
		os.Exit(1)
	}

	outData, err := outCodec.Marshal(&s)
	if err != nil {
		logger.Error("failed to encode settings", "file", *out, "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, outData, 0644); err != nil {
		logger.Error("failed to write settings", "file", *out, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %s (%s) to %s (%s)\n", *in, inCodec.Name(), *out, outCodec.Name())
}

func runSnapshot(args []string) {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	file := fs.String("f", "settings.toml", "settings file to snapshot")
	dbPath := fs.String("db", "menucfg.db", "snapshot database")
	name := fs.String("name", "", "snapshot name")
	fs.Parse(args)

	if *name == "" {
		logger.Error("snapshot requires -name")
		os.Exit(1)
	}

	ctrl, err := loadController(*file)
	if err != nil {
		logger.Error("failed to open settings", "file", *file, "err", err)
		os.Exit(1)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("failed to open snapshot database", "db", *dbPath, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Save(*name, ctrl.Root()); err != nil {
		logger.Error("failed to save snapshot", "name", *name, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Snapshot %q saved to %s\n", *name, *dbPath)
}

func runRestore(args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	file := fs.String("f", "settings.toml", "settings file to write")
	dbPath := fs.String("db", "menucfg.db", "snapshot database")
	name := fs.String("name", "", "snapshot name")
	fs.Parse(args)

	if *name == "" {
		logger.Error("restore requires -name")
		os.Exit(1)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("failed to open snapshot database", "db", *dbPath, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	rows, err := st.Load(*name)
	if err != nil {
		logger.Error("failed to load snapshot", "name", *name, "err", err)
		os.Exit(1)
	}

	rec := &settings.Settings{}
	view, err := menu.Bind(rec)
	if err != nil {
		logger.Error("failed to bind settings", "err", err)
		os.Exit(1)
	}
	if err := store.Apply(view, rows); err != nil {
		logger.Error("failed to apply snapshot", "name", *name, "err", err)
		os.Exit(1)
	}

	c, err := codec.ForPath(*file)
	if err != nil {
		logger.Error("unsupported output format", "file", *file, "err", err)
		os.Exit(1)
	}
	data, err := c.Marshal(rec)
	if err != nil {
		logger.Error("failed to encode settings", "file", *file, "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*file, data, 0644); err != nil {
		logger.Error("failed to write settings", "file", *file, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Snapshot %q restored to %s\n", *name, *file)
}

func runSnapshots(args []string) {
	fs := flag.NewFlagSet("snapshots", flag.ExitOnError)
	dbPath := fs.String("db", "menucfg.db", "snapshot database")
	fs.Parse(args)

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("failed to open snapshot database", "db", *dbPath, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	list, err := st.List()
	if err != nil {
		logger.Error("failed to list snapshots", "err", err)
		os.Exit(1)
	}

	if len(list) == 0 {
		fmt.Println("No snapshots.")
		return
	}
	for _, sn := range list {
		fmt.Printf("%-24s %-20s %d fields\n", sn.Name, sn.CreatedAt, sn.Fields)
	}
}

func runDelete(args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	dbPath := fs.String("db", "menucfg.db", "snapshot database")
	name := fs.String("name", "", "snapshot name")
	fs.Parse(args)

	if *name == "" {
		logger.Error("delete requires -name")
		os.Exit(1)
	}

	st, err := store.Open(*dbPath)
	if err != nil {
		logger.Error("failed to open snapshot database", "db", *dbPath, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Delete(*name); err != nil {
		logger.Error("failed to delete snapshot", "name", *name, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Snapshot %q deleted\n", *name)
}
