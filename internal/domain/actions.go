package domain

// Action represents a user-invocable action in the focus timer.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description    string
	Name           string
	RequiresActive bool
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "cancel", Description: "Cancel the running session and unblock sites", RequiresActive: true},
	{Name: "help", Description: "Show keyboard shortcuts", RequiresActive: false},
	{Name: "new_session", Description: "Configure and start a new session", RequiresActive: false},
	{Name: "quit", Description: "Exit Perry (cancels a running session)", RequiresActive: false},
	{Name: "toggle_sites", Description: "Show or hide the blocked site list", RequiresActive: false},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetActionsForContext returns actions filtered by context.
// If hasActive is false, actions that require a running session are excluded.
func GetActionsForContext(hasActive bool) []Action {
	if hasActive {
		return Actions
	}

	var filtered []Action
	for _, a := range Actions {
		if !a.RequiresActive {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
