package domain

// Category classifies a hook by the event it attaches to
type Category string

const (
	CategoryPreToolUse        Category = "PreToolUse"
	CategoryPostToolUse       Category = "PostToolUse"
	CategorySessionStart      Category = "SessionStart"
	CategorySessionEnd        Category = "SessionEnd"
	CategoryUserPromptSubmit  Category = "UserPromptSubmit"
	CategoryPermissionRequest Category = "PermissionRequest"
	CategorySubagentStop      Category = "SubagentStop"
	CategoryPreCompact        Category = "PreCompact"
	CategoryStop              Category = "Stop"
	CategoryNotification      Category = "Notification"
	CategoryUtility           Category = "Utility"
	CategoryWorkflow          Category = "Workflow"
	CategoryOther             Category = "Other"
)

// KnownCategories lists the fixed category enumeration in declaration order
var KnownCategories = []Category{
	CategoryPreToolUse,
	CategoryPostToolUse,
	CategorySessionStart,
	CategorySessionEnd,
	CategoryUserPromptSubmit,
	CategoryPermissionRequest,
	CategorySubagentStop,
	CategoryPreCompact,
	CategoryStop,
	CategoryNotification,
	CategoryUtility,
	CategoryWorkflow,
	CategoryOther,
}

// IsKnown reports whether c belongs to the fixed enumeration.
// Catalog data may carry other values; they are displayed as-is.
func (c Category) IsKnown() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// Hook is a community-contributed automation hook shown in the catalog.
// Hooks are read-only once loaded.
type Hook struct {
	Author          Author        `json:"author" toml:"author"`
	Category        Category      `json:"category" toml:"category"`
	Compatibility   Compatibility `json:"compatibility" toml:"compatibility"`
	CreatedAt       string        `json:"createdAt,omitempty" toml:"created_at,omitempty"`
	Description     string        `json:"description" toml:"description"`
	FullDescription string        `json:"fullDescription,omitempty" toml:"full_description,omitempty"`
	GitHub          GitHubStats   `json:"github" toml:"github"`
	ID              string        `json:"id" toml:"id"`
	LastUpdated     string        `json:"lastUpdated,omitempty" toml:"last_updated,omitempty"`
	Metadata        Metadata      `json:"metadata" toml:"metadata"`
	Name            string        `json:"name" toml:"name"`
	PublishedAt     string        `json:"publishedAt,omitempty" toml:"published_at,omitempty"`
	Quality         Quality       `json:"quality" toml:"quality"`
	RepoName        string        `json:"repoName" toml:"repo_name"`
	RepoOwner       string        `json:"repoOwner" toml:"repo_owner"`
	RepoURL         string        `json:"repoUrl" toml:"repo_url"`
	Stars           int           `json:"stars,omitempty" toml:"stars,omitempty"`
	Stats           Stats         `json:"stats" toml:"stats"`
	UpdatedAt       string        `json:"updatedAt,omitempty" toml:"updated_at,omitempty"`
}

// Repository returns "owner/name"
func (h Hook) Repository() string {
	if h.RepoOwner == "" {
		return h.RepoName
	}
	return h.RepoOwner + "/" + h.RepoName
}

// StarCount prefers the synced GitHub count over the top-level field
func (h Hook) StarCount() int {
	if h.GitHub.Stars > 0 {
		return h.GitHub.Stars
	}
	return h.Stars
}

// GitHubStats holds repository counters synced from GitHub
type GitHubStats struct {
	Forks    int    `json:"forks" toml:"forks"`
	Issues   int    `json:"issues" toml:"issues"`
	LastSync string `json:"lastSync,omitempty" toml:"last_sync,omitempty"`
	Stars    int    `json:"stars" toml:"stars"`
}

// Metadata describes how a hook is wired into the assistant
type Metadata struct {
	HookTypes []string `json:"hookTypes,omitempty" toml:"hook_types,omitempty"`
	Keywords  []string `json:"keywords,omitempty" toml:"keywords,omitempty"`
	License   string   `json:"license,omitempty" toml:"license,omitempty"`
	Matchers  []string `json:"matchers,omitempty" toml:"matchers,omitempty"`
	Tags      []string `json:"tags,omitempty" toml:"tags,omitempty"`
	Version   string   `json:"version,omitempty" toml:"version,omitempty"`
}

// Stats holds catalog usage counters
type Stats struct {
	DailyActive int     `json:"dailyActive" toml:"daily_active"`
	Installs    int     `json:"installs" toml:"installs"`
	Rating      float64 `json:"rating" toml:"rating"`
	Reviews     int     `json:"reviews" toml:"reviews"`
	Views       int     `json:"views" toml:"views"`
}

// Compatibility lists supported platforms and runtime dependencies
type Compatibility struct {
	Dependencies []Dependency `json:"dependencies,omitempty" toml:"dependencies,omitempty"`
	Platforms    []string     `json:"platforms,omitempty" toml:"platforms,omitempty"`
}

// Dependency is an external tool a hook needs
type Dependency struct {
	InstallCommand string `json:"installCommand,omitempty" toml:"install_command,omitempty"`
	Name           string `json:"name" toml:"name"`
	Required       bool   `json:"required" toml:"required"`
	Version        string `json:"version,omitempty" toml:"version,omitempty"`
}

// Quality holds review flags shown as badges
type Quality struct {
	CommunityChoice    bool `json:"communityChoice" toml:"community_choice"`
	DocumentationScore int  `json:"documentationScore" toml:"documentation_score"`
	SecurityAudited    bool `json:"securityAudited" toml:"security_audited"`
	Verified           bool `json:"verified" toml:"verified"`
}

// Author is the catalog entry's publisher
type Author struct {
	AvatarURL  string `json:"avatarUrl,omitempty" toml:"avatar_url,omitempty"`
	IsVerified bool   `json:"isVerified" toml:"is_verified"`
	Name       string `json:"name,omitempty" toml:"name,omitempty"`
	Reputation int    `json:"reputation" toml:"reputation"`
	Username   string `json:"username" toml:"username"`
}
