package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agiangrant/stripes/internal/theme"
	"github.com/agiangrant/stripes/tw"
)

type generateOptions struct {
	themeFile string
	content   []string
	output    string
	all       bool
	watch     bool
	interval  time.Duration
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stripes CSS from theme.toml",
		Long: `Generate stripes CSS from theme.toml.

With --content, only classes found in the given files, directories or glob
patterns are emitted, including arbitrary values such as
bg-stripes-[#1da1f2]. Without it every palette utility is emitted.`,
		Example: `  stripes generate --all --out stripes.css
  stripes generate --content "web/*.html" --content src --out dist/stripes.css`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer cancel()
				return generateWatch(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return generateOnce(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.themeFile, "theme", "", "Path to theme.toml (default: search the working directory)")
	cmd.Flags().StringArrayVar(&opts.content, "content", nil, "File, directory or glob to scan for classes (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Output CSS file (default: stdout)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Emit every palette utility even when --content is set")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Watch inputs for changes and regenerate")
	cmd.Flags().DurationVar(&opts.interval, "interval", time.Second, "Polling interval for --watch")
	return cmd
}

func generateOnce(opts generateOptions, stdout, stderr io.Writer) error {
	css, count, err := buildCSS(opts)
	if err != nil {
		return err
	}

	if opts.output == "" || opts.output == "-" {
		_, err := stdout.Write(css)
		return err
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(opts.output, css, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	logStatus(stderr, "success", fmt.Sprintf("Generated %d rules in %s", count, opts.output))
	return nil
}

// buildCSS renders the stylesheet for opts and returns it with its rule count.
func buildCSS(opts generateOptions) ([]byte, int, error) {
	t, err := loadTheme(opts.themeFile)
	if err != nil {
		return nil, 0, err
	}
	genOpts := theme.ApplyEnv(t.Options())

	sheet := tw.NewStylesheet()
	tw.Register(sheet, t.Table(), genOpts)

	var rules []tw.Rule
	if opts.all || len(opts.content) == 0 {
		rules = sheet.All()
	} else {
		files, err := contentFiles(opts.content, opts.output)
		if err != nil {
			return nil, 0, err
		}
		prefix := genOpts.Resolve().Prefix
		var candidates []string
		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				return nil, 0, fmt.Errorf("failed to read %s: %w", file, err)
			}
			candidates = append(candidates, tw.ExtractCandidates(string(data), prefix)...)
		}
		rules = sheet.Rules(candidates)
	}

	var buf bytes.Buffer
	if err := tw.WriteCSS(&buf, rules); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(rules), nil
}

// contentFiles expands directories and glob patterns into regular files.
// The file at skip, usually the generated stylesheet, is never returned.
func contentFiles(patterns []string, skip string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	skipAbs := absPath(skip)
	add := func(path string) {
		if skipAbs != "" && absPath(path) == skipAbs {
			return
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			err := filepath.WalkDir(pattern, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.Type().IsRegular() {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", pattern, err)
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid content pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && info.Mode().IsRegular() {
				add(m)
			}
		}
	}
	return files, nil
}

// absPath returns the cleaned absolute form of path, or "" for stdout.
func absPath(path string) string {
	if path == "" || path == "-" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// generateWatch regenerates whenever the theme or a content file changes.
// It polls modification times until ctx is cancelled.
func generateWatch(ctx context.Context, opts generateOptions, stdout, stderr io.Writer) error {
	if opts.themeFile == "" {
		opts.themeFile = theme.Find(".")
	}
	if opts.interval <= 0 {
		opts.interval = time.Second
	}
	logStatus(stderr, "info", fmt.Sprintf("Watching %s for changes, press Ctrl+C to stop", opts.themeFile))

	last := snapshot(opts)
	if err := generateOnce(opts, stdout, stderr); err != nil {
		logStatus(stderr, "warning", err.Error())
	}

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			current := snapshot(opts)
			if maps.Equal(current, last) {
				continue
			}
			last = current
			logStatus(stderr, "info", "Inputs changed, regenerating")
			if err := generateOnce(opts, stdout, stderr); err != nil {
				logStatus(stderr, "error", err.Error())
			}
		}
	}
}

type fileStamp struct {
	modTime int64
	size    int64
}

// snapshot records the modification time and size of every watched file.
func snapshot(opts generateOptions) map[string]fileStamp {
	paths := []string{opts.themeFile}
	if files, err := contentFiles(opts.content, opts.output); err == nil {
		paths = append(paths, files...)
	}
	stamps := make(map[string]fileStamp, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			stamps[p] = fileStamp{modTime: info.ModTime().UnixNano(), size: info.Size()}
		}
	}
	return stamps
}
