package notify

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// The canned notification shapes below each build their own Notifier and
// swallow every failure, including missing configuration. Nothing past
// argument parsing on a hook path may surface an error.

// Waiting announces that the host tool is blocked on user input.
func Waiting(ctx context.Context) {
	n, err := New()
	if err != nil {
		return
	}
	_ = n.Send(ctx, "🔔 Agent Notification", []Field{
		{Name: "📁 Project", Value: ProjectName()},
		{Name: "💬 Status", Value: "Waiting for user input or permission"},
		{Name: "👤 Dev", Value: mention(n)},
	})
}

// Stopped announces that the host tool finished or was stopped.
func Stopped(ctx context.Context) {
	n, err := New()
	if err != nil {
		return
	}
	_ = n.Send(ctx, "⏹️ Agent Stopped", []Field{
		{Name: "📁 Project", Value: ProjectName()},
		{Name: "🛑 Status", Value: "Operation stopped or subagent stopped"},
		{Name: "👤 Dev", Value: mention(n)},
	})
}

// LongOperation announces an operation that ran for seconds, labeled with
// operationType (for example "Bash" or "Task").
func LongOperation(ctx context.Context, seconds int64, operationType string) {
	n, err := New()
	if err != nil {
		return
	}
	_ = n.Send(ctx, fmt.Sprintf("⚠️ Long %s Operation", operationType), []Field{
		{Name: "⏱️ Duration", Value: FormatDuration(seconds)},
		{Name: "📁 Project", Value: ProjectName()},
		{Name: "👤 Dev", Value: mention(n)},
	})
}

// FormatDuration renders whole seconds as a minutes/seconds breakdown.
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// ProjectName is the basename of the working directory, used as the
// project label in notifications.
func ProjectName() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return filepath.Base(cwd)
}

// mention formats a Slack user mention for the configured member.
func mention(n *Notifier) string {
	return "<@" + n.MemberID() + ">"
}
