package errors

import "errors"

// ErrorInfo holds a user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their
// user-facing messages. This single source of truth ensures UserMessage and
// Actionable stay in sync. Using a slice (not a map) because errors.Is()
// requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrUnknownQuestKind,
		info: ErrorInfo{
			Message: "This quest has an unrecognized kind and cannot be computed.",
			Action:  "Check the quest record; kind must be 'linked' or 'quantitative'.",
		},
	},
	{
		err: ErrInvalidTarget,
		info: ErrorInfo{
			Message: "Quantitative quests need a positive target count.",
			Action:  "Set a target of 1 or more on the quest.",
		},
	},
	{
		err: ErrInvalidCountScope,
		info: ErrorInfo{
			Message: "This quest counts an unrecognized entity type.",
			Action:  "Set scope to 'completed_tasks' or 'completed_goals'.",
		},
	},
	{
		err: ErrInvalidPeriod,
		info: ErrorInfo{
			Message: "Quantitative quests need a positive period length in days.",
			Action:  "Set a period of 1 day or more on the quest.",
		},
	},
	{
		err: ErrGoalsUnavailable,
		info: ErrorInfo{
			Message: "The goal list could not be fetched; progress is unavailable.",
			Action:  "Check connectivity to the goal service and retry.",
		},
	},
	{
		err: ErrSnapshotNotFound,
		info: ErrorInfo{
			Message: "The snapshot file was not found.",
			Action:  "Pass an existing file via --snapshot.",
		},
	},
	{
		err: ErrSnapshotInvalid,
		info: ErrorInfo{
			Message: "The snapshot file could not be parsed.",
			Action:  "Check the YAML structure against the documented snapshot format.",
		},
	},
	{
		err: ErrQuestNotFound,
		info: ErrorInfo{
			Message: "No quest with that ID exists in the snapshot.",
			Action:  "Run 'questlog progress' without an ID to list all quests.",
		},
	},
	{
		err: ErrGoalNotFound,
		info: ErrorInfo{
			Message: "No goal with that ID exists in the snapshot.",
			Action:  "Run 'questlog goals' without an ID to list all goals.",
		},
	},
}

// UserMessage returns a user-friendly message for known sentinel errors.
// Unknown errors fall back to their Error() string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns the suggested action for known sentinel errors,
// or the empty string when no suggestion exists.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
