package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/theme"
)

// maxDetailWidth caps the overlay width on wide terminals
const maxDetailWidth = 84

// HookDetail is the overlay with everything the catalog knows about a hook
type HookDetail struct {
	Completed bool
	hook      domain.Hook
	keys      *KeyMap
	styles    theme.Styles
	viewport  viewport.Model
}

// NewHookDetail creates the overlay for hook
func NewHookDetail(hook domain.Hook, keys *KeyMap, styles theme.Styles) *HookDetail {
	vp := viewport.New(0, 0)
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")
	return &HookDetail{
		hook:     hook,
		keys:     keys,
		styles:   styles,
		viewport: vp,
	}
}

// Hook returns the displayed hook
func (d *HookDetail) Hook() domain.Hook {
	return d.hook
}

// Init implements tea.Model
func (d *HookDetail) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Copy and open requests are passed back to
// the model as CopyURLMsg and OpenURLMsg.
func (d *HookDetail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyEsc,
			key.Matches(msg, d.keys.Application.Quit.Binding, d.keys.Hook.OpenDetail.Binding):
			d.Completed = true
			return d, nil
		case key.Matches(msg, d.keys.Hook.CopyURL.Binding):
			hook := d.hook
			return d, func() tea.Msg { return CopyURLMsg{Hook: hook} }
		case key.Matches(msg, d.keys.Hook.OpenURL.Binding):
			hook := d.hook
			return d, func() tea.Msg { return OpenURLMsg{Hook: hook} }
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements tea.Model
func (d *HookDetail) View() string {
	copyKey := d.keys.Hook.CopyURL.Binding.Help().Key
	openKey := d.keys.Hook.OpenURL.Binding.Help().Key
	footer := d.styles.Muted.Render(fmt.Sprintf("%s copy URL • %s open • esc close • ↑↓ scroll", copyKey, openKey))
	return d.styles.DetailBorder.Render(d.viewport.View() + "\n\n" + footer)
}

func (d *HookDetail) resize(width, height int) {
	frameW := d.styles.DetailBorder.GetHorizontalFrameSize()
	frameH := d.styles.DetailBorder.GetVerticalFrameSize()

	contentWidth := max(min(width-4, maxDetailWidth)-frameW, 20)
	content := renderHookDetail(d.styles, d.hook, contentWidth)

	// Border, padding and the two footer lines
	maxHeight := max(height-2-frameH-2, 3)
	d.viewport.Width = contentWidth
	d.viewport.Height = min(strings.Count(content, "\n")+1, maxHeight)
	d.viewport.SetContent(content)
}

// renderHookDetail lays out every known field of hook in width columns
func renderHookDetail(styles theme.Styles, hook domain.Hook, width int) string {
	var b strings.Builder

	b.WriteString(styles.Badge(hook.Category).Render(hook.Category.String()) + "  " + styles.CardName.Render(hook.Name) + "\n")
	repoLine := hook.Repository()
	if n := hook.StarCount(); n > 0 {
		repoLine += "  " + styles.Stars.Render(fmt.Sprintf("★ %d", n))
	}
	b.WriteString(styles.Muted.Render(repoLine) + "\n\n")

	description := hook.FullDescription
	if description == "" {
		description = hook.Description
	}
	if description != "" {
		b.WriteString(styles.DetailValue.Render(strings.Join(wrapWords(description, width), "\n")) + "\n")
	}

	section := func(title string, rows [][2]string) {
		var body strings.Builder
		for _, row := range rows {
			if row[1] == "" {
				continue
			}
			body.WriteString(styles.DetailLabel.Render(row[0]) + styles.DetailValue.Render(row[1]) + "\n")
		}
		if body.Len() == 0 {
			return
		}
		b.WriteString(styles.DetailSection.Render(title) + "\n" + body.String())
	}

	section("Details", [][2]string{
		{"Version", hook.Metadata.Version},
		{"License", hook.Metadata.License},
		{"Hook types", strings.Join(hook.Metadata.HookTypes, ", ")},
		{"Matchers", strings.Join(hook.Metadata.Matchers, ", ")},
		{"Tags", strings.Join(hook.Metadata.Tags, ", ")},
		{"Platforms", strings.Join(hook.Compatibility.Platforms, ", ")},
		{"Last updated", hook.LastUpdated},
	})

	section("Stats", [][2]string{
		{"Installs", countOrEmpty(hook.Stats.Installs)},
		{"Daily active", countOrEmpty(hook.Stats.DailyActive)},
		{"Rating", ratingText(hook.Stats)},
		{"Views", countOrEmpty(hook.Stats.Views)},
		{"Forks", countOrEmpty(hook.GitHub.Forks)},
		{"Open issues", countOrEmpty(hook.GitHub.Issues)},
	})

	section("Quality", [][2]string{
		{"Verified", checkOrEmpty(hook.Quality.Verified)},
		{"Community pick", checkOrEmpty(hook.Quality.CommunityChoice)},
		{"Security audit", checkOrEmpty(hook.Quality.SecurityAudited)},
		{"Documentation", scoreText(hook.Quality.DocumentationScore)},
	})

	deps := make([][2]string, 0, len(hook.Compatibility.Dependencies))
	for _, dep := range hook.Compatibility.Dependencies {
		deps = append(deps, [2]string{dep.Name, dependencyText(dep)})
	}
	section("Dependencies", deps)

	section("Author", [][2]string{
		{"Name", authorName(hook.Author)},
		{"Reputation", countOrEmpty(hook.Author.Reputation)},
	})

	b.WriteString("\n" + styles.Muted.Render("View on GitHub → ") + styles.Link.Render(hook.RepoURL))
	return b.String()
}

func countOrEmpty(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

func checkOrEmpty(b bool) string {
	if !b {
		return ""
	}
	return "✓"
}

func scoreText(score int) string {
	if score <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/100", score)
}

func ratingText(s domain.Stats) string {
	if s.Rating <= 0 {
		return ""
	}
	if s.Reviews > 0 {
		return fmt.Sprintf("%.1f (%d reviews)", s.Rating, s.Reviews)
	}
	return fmt.Sprintf("%.1f", s.Rating)
}

func dependencyText(dep domain.Dependency) string {
	parts := []string{"optional"}
	if dep.Required {
		parts[0] = "required"
	}
	if dep.Version != "" {
		parts = append(parts, dep.Version)
	}
	if dep.InstallCommand != "" {
		parts = append(parts, "install: "+dep.InstallCommand)
	}
	return strings.Join(parts, ", ")
}

func authorName(a domain.Author) string {
	var name string
	switch {
	case a.Name != "" && a.Username != "":
		name = fmt.Sprintf("%s (@%s)", a.Name, a.Username)
	case a.Username != "":
		name = "@" + a.Username
	default:
		name = a.Name
	}
	if name != "" && a.IsVerified {
		name += " ✓"
	}
	return name
}
