package ui

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// KeySection groups related key bindings for display
type KeySection string

const (
	SectionApplication KeySection = "Application"
	SectionNavigation  KeySection = "Navigation"
	SectionHook        KeySection = "Hook"
)

// KeySections lists the sections in display order
var KeySections = []KeySection{SectionNavigation, SectionHook, SectionApplication}

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults        []string
	Help            string
	IsPaletteAction bool    // If true, this key appears in command palette
	Msg             tea.Msg // Prototype message for dispatch (nil if not dispatchable)
	Name            string
	Section         KeySection
	TipFormat       string
}

// AllKeyDefinitions contains all configurable key bindings.
// If IsPaletteAction is true, the key appears in the command palette.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "command_palette", Defaults: []string{"P"}, Help: "command palette", Section: SectionApplication, TipFormat: "press %s to open the command palette"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit", Section: SectionApplication},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts", Section: SectionApplication, IsPaletteAction: true, Msg: ShowHelpMsg{}, TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application", Section: SectionApplication, IsPaletteAction: true, Msg: QuitMsg{}},
	{Name: "theme_cycle", Defaults: []string{"t"}, Help: "cycle theme", Section: SectionApplication, IsPaletteAction: true, Msg: CycleThemeMsg{}, TipFormat: "press %s to switch between light, dark and system themes"},
	{Name: "theme_pick", Defaults: []string{"T"}, Help: "choose theme", Section: SectionApplication, IsPaletteAction: true, Msg: PickThemeMsg{}},

	// Navigation keys
	{Name: "clear_search", Defaults: []string{"ctrl+u"}, Help: "clear search", Section: SectionNavigation, IsPaletteAction: true, Msg: ClearSearchMsg{}, TipFormat: "press %s to clear the search box"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next hook", Section: SectionNavigation},
	{Name: "next_category", Defaults: []string{"tab", "]"}, Help: "next category", Section: SectionNavigation, IsPaletteAction: true, Msg: NextCategoryMsg{}, TipFormat: "press %s to filter by the next category"},
	{Name: "prev_category", Defaults: []string{"shift+tab", "["}, Help: "previous category", Section: SectionNavigation, IsPaletteAction: true, Msg: PrevCategoryMsg{}},
	{Name: "search", Defaults: []string{"/"}, Help: "search hooks", Section: SectionNavigation, IsPaletteAction: true, Msg: FocusSearchMsg{}, TipFormat: "press %s to search by name, description or repository"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous hook", Section: SectionNavigation},

	// Hook keys
	{Name: "copy_url", Defaults: []string{"y"}, Help: "copy repository URL", Section: SectionHook, IsPaletteAction: true, Msg: CopyURLMsg{}, TipFormat: "press %s to copy the selected hook's GitHub URL"},
	{Name: "open_detail", Defaults: []string{"enter"}, Help: "show hook details", Section: SectionHook, IsPaletteAction: true, Msg: OpenDetailMsg{}},
	{Name: "open_url", Defaults: []string{"o"}, Help: "open repository in browser", Section: SectionHook, IsPaletteAction: true, Msg: OpenURLMsg{}, TipFormat: "press %s to open the selected hook on GitHub"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

// GetKeyDefinitionsBySection returns the definitions in section, sorted
// by name
func GetKeyDefinitionsBySection(section KeySection) []KeyDefinition {
	var defs []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.Section == section {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// GetPaletteActions returns key definitions that should appear in the command palette.
func GetPaletteActions() []KeyDefinition {
	var actions []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if !def.IsPaletteAction {
			continue
		}
		actions = append(actions, def)
	}
	return actions
}
