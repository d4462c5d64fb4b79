package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"designlens/internal/analyze"
	"designlens/internal/config"
)

// resolveRequest picks file key and node id from flags, then the
// environment, then an interactive prompt when stdin is a terminal.
func resolveRequest(in io.Reader, out io.Writer, opts options, cfg *config.Config) (analyze.Request, error) {
	req := analyze.Request{
		FileKey: firstNonEmpty(opts.fileKey, cfg.FileKey),
		NodeID:  firstNonEmpty(opts.nodeID, cfg.NodeID),
	}
	if req.FileKey != "" && req.NodeID != "" {
		return req, nil
	}
	if isTerminal(in) {
		r := bufio.NewReader(in)
		var err error
		if req.FileKey == "" {
			if req.FileKey, err = ask(r, out, "Figma file key: "); err != nil {
				return req, err
			}
		}
		if req.NodeID == "" {
			if req.NodeID, err = ask(r, out, "Node id (e.g. 1:1099): "); err != nil {
				return req, err
			}
		}
	}
	if req.FileKey == "" || req.NodeID == "" {
		return req, &analyze.Error{
			Kind: analyze.KindInputValidation,
			Op:   "read input",
			Err: errors.New("file key and node id are required: " +
				"pass --file-key <KEY> --node-id <ID> or set FIGMA_FILE_KEY and FIGMA_NODE_ID"),
		}
	}
	return req, nil
}

func ask(r *bufio.Reader, out io.Writer, label string) (string, error) {
	_, _ = fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", &analyze.Error{Kind: analyze.KindInputValidation, Op: "read input", Err: err}
	}
	return strings.TrimSpace(line), nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
