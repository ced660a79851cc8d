// Package setup manages the agent-side installation of savi hooks.
//
// Hooks live in Claude Code settings files as JSON. savi-managed entries
// are recognized by their command string, so installation is idempotent
// and never touches entries owned by other tools.
package setup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/savi-dev/savi/internal/output"
)

// hookMarker identifies a savi-managed hook command.
const hookMarker = "savi hook"

// HookEntry is one hook command registered for an event.
type HookEntry struct {
	Matcher string
	Command string
}

// HookCommands returns the hook entries savi manages, keyed by event name.
// startFile is the timing state file shared by the PreToolUse and
// PostToolUse pair.
func HookCommands(startFile string) map[string][]HookEntry {
	longOp := "savi hook long-operation --start-file " + startFile +
		" --threshold 30 --operation-type Bash"
	return map[string][]HookEntry{
		"Notification": {{Command: "savi hook notification"}},
		"Stop":         {{Command: "savi hook stop"}},
		"SubagentStop": {{Command: "savi hook stop"}},
		"PreToolUse":   {{Matcher: "Bash", Command: "savi hook create-start-file --file " + startFile}},
		"PostToolUse":  {{Matcher: "Bash", Command: longOp}},
	}
}

// SettingsPath resolves the Claude Code settings file for the scope.
// Returns the path and a scope label ("project" or "global").
func SettingsPath(project bool) (string, string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
		}
		return filepath.Join(cwd, ".claude", "settings.json"), "project", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get home directory", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), "global", nil
}

// LoadSettings reads a settings file. A missing file yields an empty map.
func LoadSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read settings file", err)
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, output.NewSystemErrorWithCause("settings file is not valid JSON", err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// SaveSettings writes a settings file, creating its directory if needed.
func SaveSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create settings directory", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("failed to encode settings", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write settings file", err)
	}
	return nil
}

// IsInstalled reports whether any savi-managed hook exists in settings.
func IsInstalled(settings map[string]any) bool {
	hooks, _ := settings["hooks"].(map[string]any)
	for _, rawGroups := range hooks {
		groups, _ := rawGroups.([]any)
		for _, rawGroup := range groups {
			group, _ := rawGroup.(map[string]any)
			for _, rawHook := range hookList(group) {
				if isManagedHook(rawHook) {
					return true
				}
			}
		}
	}
	return false
}

// Install merges the savi hook entries into settings, replacing any
// existing savi entries and preserving everything else.
func Install(settings map[string]any, startFile string) {
	Remove(settings)

	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
		settings["hooks"] = hooks
	}

	for event, entries := range HookCommands(startFile) {
		groups, _ := hooks[event].([]any)
		for _, entry := range entries {
			groups = append(groups, map[string]any{
				"matcher": entry.Matcher,
				"hooks": []any{
					map[string]any{"type": "command", "command": entry.Command},
				},
			})
		}
		hooks[event] = groups
	}
}

// Remove deletes savi-managed hook entries from settings in place.
// Groups and events left empty afterwards are dropped.
func Remove(settings map[string]any) {
	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		return
	}

	for event, rawGroups := range hooks {
		groups, _ := rawGroups.([]any)
		var keptGroups []any
		for _, rawGroup := range groups {
			group, _ := rawGroup.(map[string]any)
			var keptHooks []any
			for _, rawHook := range hookList(group) {
				if !isManagedHook(rawHook) {
					keptHooks = append(keptHooks, rawHook)
				}
			}
			if len(keptHooks) > 0 {
				group["hooks"] = keptHooks
				keptGroups = append(keptGroups, group)
			}
		}
		if len(keptGroups) > 0 {
			hooks[event] = keptGroups
		} else {
			delete(hooks, event)
		}
	}

	if len(hooks) == 0 {
		delete(settings, "hooks")
	}
}

// hookList extracts the hooks slice from a group.
func hookList(group map[string]any) []any {
	list, _ := group["hooks"].([]any)
	return list
}

// isManagedHook reports whether a raw hook entry belongs to savi.
func isManagedHook(rawHook any) bool {
	hook, _ := rawHook.(map[string]any)
	cmd, _ := hook["command"].(string)
	return strings.Contains(cmd, hookMarker)
}
