// Package convert implements the command line conversion of HTML sources
// into design-node JSON documents.
package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"h2f/fetch"
	"h2f/state"
	"h2f/transform"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles the core conversion logic independently of CLI framework.
// It determines the input type (URL, directory or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {

	if isURL(src) {
		return processURL(ctx, src, dst, log)
	}

	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	if !isDocumentFile(src) {
		return fmt.Errorf("input was not recognized as HTML document (%s)", src)
	}

	text, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read input (%s): %w", src, err)
	}
	return processDocument(ctx, string(text), filepath.Base(src), dst, log)
}

// processURL downloads a single page and converts it.
func processURL(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	text, err := fetch.NewClient(&env.Cfg.Fetch, env.Log).Fetch(ctx, src)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("fetched.html", []byte(text))

	return processDocument(ctx, text, urlBaseName(src), dst, log)
}

// processDir walks directory tree finding HTML files and processes them in
// stable, human friendly order.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {

	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !isDocumentFile(path) {
			log.Debug("Skipping file, not recognized as HTML document", zap.String("file", path))
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}
	sort.Sort(natural.StringSlice(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := os.ReadFile(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			continue
		}

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, string(text), src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

// processDocument converts single HTML document. "src" is part of the source
// path (always including file name) relative to the original path, or a name
// derived from the URL. "dst" is the destination directory where the
// resulting JSON should be written.
func processDocument(ctx context.Context, text, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	root, err := transform.NewParser(env.Log).Parse(text)
	if err != nil {
		return fmt.Errorf("unable to parse source (%s): %w", src, err)
	}

	outputName = buildOutputPath(text, root, src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	var payload []byte
	if env.Cfg.Document.IndentJSON {
		payload, err = json.MarshalIndent(root, "", "  ")
	} else {
		payload, err = json.Marshal(root)
	}
	if err != nil {
		return fmt.Errorf("unable to serialize result: %w", err)
	}

	if err := os.WriteFile(outputName, payload, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	env.Rpt.Store("result-"+filepath.Base(outputName), outputName)
	return nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// urlBaseName derives a file like source name from a page URL.
func urlBaseName(src string) string {
	src = strings.TrimSuffix(src, "/")
	if i := strings.LastIndexByte(src, '/'); i >= 0 && i >= len("https:/") {
		src = src[i+1:]
	} else {
		src = strings.TrimPrefix(strings.TrimPrefix(src, "https://"), "http://")
	}
	if src == "" {
		src = "index"
	}
	if !isDocumentFile(src) {
		src += ".html"
	}
	return src
}
