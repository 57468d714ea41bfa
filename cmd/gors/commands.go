package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/saibing/gors/internal/ast"
	"github.com/saibing/gors/internal/config"
	"github.com/saibing/gors/internal/docprint"
	"github.com/saibing/gors/internal/lower"
	"github.com/saibing/gors/internal/printer"
	"github.com/saibing/gors/internal/rpcserve"
	"github.com/saibing/gors/internal/source"
	"github.com/saibing/gors/internal/watch"
)

var (
	emit         string
	release      bool
	watchFlag    bool
	denylistPath string
	serveMode    string
	serveAddr    string
	serveTrace   bool

	rootCmd = &cobra.Command{
		Use:   "gors",
		Short: "A front-end for a subset of Go: tokens, AST, and an experimental lowering pass",
	}

	tokensCmd = &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokens,
	}

	astCmd = &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree for a source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runAST,
	}

	buildCmd = &cobra.Command{
		Use:   "build <file>",
		Short: "Run the pipeline up to --emit and print the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}

	runCmd = &cobra.Command{
		Use:   "run <file>",
		Short: "Run the full pipeline, including the lowering pass",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the pipeline over JSON-RPC 2.0 (stdio or tcp)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	docCmd = &cobra.Command{
		Use:   "doc <file>",
		Short: "Print Markdown-rendered doc comments for a source file's declarations",
		Args:  cobra.ExactArgs(1),
		RunE:  runDoc,
	}
)

func init() {
	buildCmd.Flags().StringVar(&emit, "emit", "lowered", "artifact to stop at: tokens, ast, or lowered")
	buildCmd.Flags().BoolVar(&release, "release", false, "lower for a release-mode downstream build")
	buildCmd.Flags().BoolVar(&watchFlag, "watch", false, "rerun on every change to <file>")
	buildCmd.Flags().StringVar(&denylistPath, "denylist", "", "file listing source paths --watch should never rescan")

	runCmd.Flags().BoolVar(&release, "release", false, "lower for a release-mode downstream build")
	runCmd.Flags().BoolVar(&watchFlag, "watch", false, "rerun on every change to <file>")
	runCmd.Flags().StringVar(&denylistPath, "denylist", "", "file listing source paths --watch should never rescan")

	serveCmd.Flags().StringVar(&serveMode, "mode", "stdio", "communication mode (stdio|tcp)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":4389", "server listen address (tcp)")
	serveCmd.Flags().BoolVar(&serveTrace, "trace", false, "print all requests and responses")

	rootCmd.AddCommand(tokensCmd, astCmd, buildCmd, runCmd, serveCmd, docCmd)
}

func readFile(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return contents, nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	filename := args[0]
	contents, err := readFile(filename)
	if err != nil {
		return err
	}
	pipeline := &source.Pipeline{Filename: filename, Contents: contents}
	triples, err := pipeline.Tokens()
	if err != nil {
		return err
	}
	return printer.FprintTokens(os.Stdout, triples)
}

func runAST(cmd *cobra.Command, args []string) error {
	filename := args[0]
	contents, err := readFile(filename)
	if err != nil {
		return err
	}
	pipeline := &source.Pipeline{Filename: filename, Contents: contents}
	file, err := pipeline.AST()
	if err != nil {
		return err
	}
	return printer.Fprint(os.Stdout, file)
}

func runBuild(cmd *cobra.Command, args []string) error {
	filename := args[0]
	cfg := config.NewDefaultConfig().Apply(&config.Options{Emit: &emit, Release: &release, DenylistPath: &denylistPath})

	build := func() {
		if err := buildOnce(filename, cfg); err != nil {
			log.Println(err)
		}
	}

	if !watchFlag {
		contents, err := readFile(filename)
		if err != nil {
			return err
		}
		return emitPipeline(os.Stdout, filename, contents, cfg)
	}

	stop, err := watch.Run(cfg, filename, build)
	if err != nil {
		return err
	}
	defer stop()
	select {}
}

func buildOnce(filename string, cfg config.Config) error {
	contents, err := readFile(filename)
	if err != nil {
		return err
	}
	return emitPipeline(os.Stdout, filename, contents, cfg)
}

func emitPipeline(w *os.File, filename string, contents []byte, cfg config.Config) error {
	pipeline := &source.Pipeline{Filename: filename, Contents: contents}
	switch cfg.Emit {
	case "tokens":
		triples, err := pipeline.Tokens()
		if err != nil {
			return err
		}
		return printer.FprintTokens(w, triples)
	case "ast":
		file, err := pipeline.AST()
		if err != nil {
			return err
		}
		return printer.Fprint(w, file)
	case "lowered", "":
		file, err := pipeline.Lowered(lower.Options{Release: cfg.Release})
		if err != nil {
			return err
		}
		return printer.Fprint(w, file)
	default:
		return fmt.Errorf("unknown --emit target %q", cfg.Emit)
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	emit = "lowered"
	return runBuild(cmd, args)
}

func runServe(cmd *cobra.Command, args []string) error {
	return rpcserve.ServeAndBlock(rpcserve.Mode(serveMode), serveAddr, config.NewDefaultConfig(), serveTrace)
}

func runDoc(cmd *cobra.Command, args []string) error {
	filename := args[0]
	contents, err := readFile(filename)
	if err != nil {
		return err
	}
	pipeline := &source.Pipeline{Filename: filename, Contents: contents}
	file, err := pipeline.AST()
	if err != nil {
		return err
	}
	printed := false
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			if text := docprint.FuncDoc(fn); text != "" {
				fmt.Fprintln(os.Stdout, text)
				printed = true
			}
		}
	}
	if !printed {
		fmt.Fprintln(os.Stdout, "(no documented declarations)")
	}
	return nil
}
