package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Vinyaaggarwal/Perry/internal/domain"
)

// KeyDefinition defines the default keys for a domain action.
// Help text comes from domain.Actions.
type KeyDefinition struct {
	Defaults []string
	Help     string // Short label for the help bar
	Name     string
}

// AllKeyDefinitions contains every key binding of the focus screen
var AllKeyDefinitions = []KeyDefinition{
	{Name: "cancel", Defaults: []string{"c"}, Help: "cancel session"},
	{Name: "help", Defaults: []string{"?"}, Help: "more keys"},
	{Name: "new_session", Defaults: []string{"n"}, Help: "new session"},
	{Name: "quit", Defaults: []string{"q", "ctrl+c"}, Help: "quit"},
	{Name: "toggle_sites", Defaults: []string{"s"}, Help: "blocked sites"},
}

// GetKeyDefinition returns the definition with the given name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	for i := range AllKeyDefinitions {
		if AllKeyDefinitions[i].Name == name {
			return &AllKeyDefinitions[i]
		}
	}
	return nil
}

// KeyMap contains the focus screen key bindings.
// It implements help.KeyMap.
type KeyMap struct {
	Cancel      key.Binding
	Help        key.Binding
	NewSession  key.Binding
	Quit        key.Binding
	ToggleSites key.Binding
}

// NewKeyMap creates the default KeyMap
func NewKeyMap() KeyMap {
	return KeyMap{
		Cancel:      buildBinding("cancel"),
		Help:        buildBinding("help"),
		NewSession:  buildBinding("new_session"),
		Quit:        buildBinding("quit"),
		ToggleSites: buildBinding("toggle_sites"),
	}
}

// buildBinding creates a key.Binding from its definition
func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}
	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}

// ShortHelp returns the bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.NewSession, k.Help, k.Quit}
}

// FullHelp returns every binding with the long action description
func (k KeyMap) FullHelp() [][]key.Binding {
	var column []key.Binding
	for _, b := range []struct {
		binding key.Binding
		name    string
	}{
		{k.Cancel, "cancel"},
		{k.Help, "help"},
		{k.NewSession, "new_session"},
		{k.Quit, "quit"},
		{k.ToggleSites, "toggle_sites"},
	} {
		binding := b.binding
		if action := domain.GetActionByName(b.name); action != nil {
			binding.SetHelp(binding.Help().Key, action.Description)
		}
		column = append(column, binding)
	}
	return [][]key.Binding{column}
}

// setActive enables the bindings that apply to the current screen
func (k *KeyMap) setActive(hasActive bool) {
	k.Cancel.SetEnabled(hasActive)
	k.NewSession.SetEnabled(!hasActive)
}
