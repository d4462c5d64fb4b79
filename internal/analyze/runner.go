package analyze

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"designlens/internal/artifact"
	"designlens/internal/figma"
	"designlens/internal/llmclient"
	"designlens/internal/report"
)

// NodeFetcher loads one document node from the design API.
type NodeFetcher interface {
	FetchNode(ctx context.Context, fileKey, nodeID string) (*figma.Node, error)
}

// Request names the node to analyse.
type Request struct {
	FileKey string
	NodeID  string
}

// Result summarises a finished run.
type Result struct {
	NodeName    string
	NodeCount   int
	PromptBytes int
	ReportBytes int
}

// Runner executes fetch -> reduce -> prompt -> model -> write once per Run.
// Every step is fatal on failure; nothing is retried.
type Runner struct {
	Design NodeFetcher
	Model  llmclient.TextClient
	// Report receives the completion. It is written only after the model
	// call succeeded, so a failed run leaves any previous report untouched.
	Report artifact.Store
	// Out receives operator-facing progress lines. Nil discards them.
	Out io.Writer
	Log *zap.Logger
}

func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	req.FileKey = strings.TrimSpace(req.FileKey)
	req.NodeID = strings.TrimSpace(req.NodeID)
	if req.FileKey == "" || req.NodeID == "" {
		return nil, newError(KindInputValidation, "read input", fmt.Errorf("file key and node id are both required"))
	}
	if err := figma.ValidateNodeID(req.NodeID); err != nil {
		return nil, newError(KindInputValidation, "validate node id", err)
	}

	fmt.Fprintf(out, "Requesting Figma node %s from file %s...\n", req.NodeID, req.FileKey)
	node, err := r.Design.FetchNode(ctx, req.FileKey, req.NodeID)
	if err != nil {
		return nil, newError(KindUpstreamAPI, "fetch node", err)
	}

	reduced := figma.Reduce(*node)
	count := figma.Count(reduced)
	log.Info("node reduced",
		zap.String("node_id", reduced.ID),
		zap.String("node_type", reduced.Type),
		zap.Int("nodes", count),
		zap.Int("depth", figma.Depth(reduced)))

	prompt, err := report.Build(reduced)
	if err != nil {
		return nil, newError(KindInternal, "build prompt", err)
	}
	fmt.Fprintf(out, "Reduced %d nodes; analysing with %s...\n", count, r.Model.Name())

	text, err := r.Model.GenerateText(ctx, report.SystemInstruction, prompt)
	if err != nil {
		return nil, newError(KindModelInvocation, "generate report", err)
	}

	if err := r.Report.Put(ctx, artifact.ReportName(req.FileKey, req.NodeID), []byte(text)); err != nil {
		return nil, newError(KindOutputWrite, "write report", err)
	}

	return &Result{
		NodeName:    reduced.Name,
		NodeCount:   count,
		PromptBytes: len(prompt),
		ReportBytes: len(text),
	}, nil
}
