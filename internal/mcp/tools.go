package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/savi-dev/savi/internal/asciiart"
	"github.com/savi-dev/savi/internal/notify"
	"github.com/savi-dev/savi/internal/scan"
	"github.com/savi-dev/savi/internal/timing"
)

// --- render_ascii tool ---

// RenderASCIIInput is the input for the render_ascii tool.
type RenderASCIIInput struct {
	Text string `json:"text"           jsonschema:"text to render"`
	Font string `json:"font,omitempty" jsonschema:"font name (default standard)"`
}

// RenderASCIIOutput is the output for the render_ascii tool.
type RenderASCIIOutput struct {
	Art   string `json:"art"   jsonschema:"rendered multi-line ASCII art"`
	Lines int    `json:"lines" jsonschema:"number of output lines"`
	Font  string `json:"font"  jsonschema:"font used"`
}

func handleRenderASCII(_ context.Context, _ *mcp.CallToolRequest, input RenderASCIIInput) (*mcp.CallToolResult, RenderASCIIOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, RenderASCIIOutput{}, fmt.Errorf("text must not be empty")
	}

	font := input.Font
	if font == "" {
		font = "standard"
	}

	art, err := asciiart.Render(input.Text, font)
	if err != nil {
		return nil, RenderASCIIOutput{}, err
	}

	return nil, RenderASCIIOutput{
		Art:   art,
		Lines: asciiart.Rows,
		Font:  font,
	}, nil
}

// --- scan_repos tool ---

// ScanReposInput is the input for the scan_repos tool.
type ScanReposInput struct {
	Root          string `json:"root,omitempty"           jsonschema:"directory to scan (default current directory)"`
	DefaultBranch string `json:"default_branch,omitempty" jsonschema:"baseline branch suppressed from results (default main)"`
	All           bool   `json:"all,omitempty"            jsonschema:"include clean repositories on the default branch"`
}

// RepoSummary is one repository in the scan output.
type RepoSummary struct {
	Path   string `json:"path"           jsonschema:"path relative to the scan root"`
	Branch string `json:"branch"         jsonschema:"branch name, or DETACHED@hash"`
	Diff   string `json:"diff,omitempty" jsonschema:"one-line diff summary, empty when clean"`
}

// ScanReposOutput is the output for the scan_repos tool.
type ScanReposOutput struct {
	Repos   []RepoSummary `json:"repos"   jsonschema:"repositories worth reporting"`
	Scanned int           `json:"scanned" jsonschema:"number of directories visited"`
}

func handleScanRepos(ctx context.Context, _ *mcp.CallToolRequest, input ScanReposInput) (*mcp.CallToolResult, ScanReposOutput, error) {
	root := input.Root
	if root == "" {
		root = "."
	}

	cfg, err := scan.LoadDefaultConfig()
	if err != nil {
		return nil, ScanReposOutput{}, err
	}
	if input.DefaultBranch != "" {
		cfg.DefaultBranch = input.DefaultBranch
	}

	report, err := scan.New(root, cfg).Scan(ctx)
	if err != nil {
		return nil, ScanReposOutput{}, err
	}

	out := ScanReposOutput{Scanned: report.Scanned}
	for _, repo := range report.Repos {
		if !input.All && !repo.Interesting() {
			continue
		}
		out.Repos = append(out.Repos, RepoSummary{
			Path:   repo.Path,
			Branch: repo.DisplayBranch(),
			Diff:   repo.Diff,
		})
	}
	return nil, out, nil
}

// --- notify_long_operation tool ---

// NotifyLongOperationInput is the input for the notify_long_operation tool.
type NotifyLongOperationInput struct {
	DurationSeconds int64  `json:"duration_seconds"         jsonschema:"how long the operation ran, in seconds"`
	Threshold       *int64 `json:"threshold,omitempty"      jsonschema:"minimum duration to notify; an explicit 0 notifies on any nonzero duration (default 30)"`
	OperationType   string `json:"operation_type,omitempty" jsonschema:"operation label (default Operation)"`
}

// NotifyLongOperationOutput is the output for the notify_long_operation tool.
type NotifyLongOperationOutput struct {
	Notified bool  `json:"notified" jsonschema:"whether a notification was sent"`
	Elapsed  int64 `json:"elapsed"  jsonschema:"the duration that was evaluated"`
}

// handleNotifyLongOperation applies the strict-threshold rule and sends the
// notification. Unlike the CLI hook path, configuration and delivery
// errors surface to the agent: a tool caller wants to know.
func handleNotifyLongOperation(ctx context.Context, _ *mcp.CallToolRequest, input NotifyLongOperationInput) (*mcp.CallToolResult, NotifyLongOperationOutput, error) {
	threshold := int64(timing.DefaultThreshold)
	if input.Threshold != nil {
		threshold = *input.Threshold
	}
	operationType := input.OperationType
	if operationType == "" {
		operationType = timing.DefaultOperationType
	}

	out := NotifyLongOperationOutput{Elapsed: input.DurationSeconds}
	if !timing.Exceeds(input.DurationSeconds, threshold) {
		return nil, out, nil
	}

	n, err := notify.New()
	if err != nil {
		return nil, NotifyLongOperationOutput{}, err
	}
	err = n.Send(ctx, fmt.Sprintf("⚠️ Long %s Operation", operationType), []notify.Field{
		{Name: "⏱️ Duration", Value: notify.FormatDuration(input.DurationSeconds)},
		{Name: "📁 Project", Value: notify.ProjectName()},
		{Name: "👤 Dev", Value: "<@" + n.MemberID() + ">"},
	})
	if err != nil {
		return nil, NotifyLongOperationOutput{}, err
	}

	out.Notified = true
	return nil, out, nil
}
