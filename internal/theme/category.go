package theme

import "github.com/hookhub/hookhub/internal/domain"

// BadgeColors holds the foreground and background of a category badge
type BadgeColors struct {
	Background Color
	Foreground Color
}

type badgePair struct {
	dark  BadgeColors
	light BadgeColors
}

var categoryColors = map[domain.Category]badgePair{
	domain.CategoryPreToolUse:        {light: BadgeColors{"153", "18"}, dark: BadgeColors{"18", "153"}},  // blue
	domain.CategoryPostToolUse:       {light: BadgeColors{"157", "22"}, dark: BadgeColors{"22", "157"}},  // green
	domain.CategorySessionStart:      {light: BadgeColors{"183", "54"}, dark: BadgeColors{"54", "183"}},  // purple
	domain.CategorySessionEnd:        {light: BadgeColors{"183", "54"}, dark: BadgeColors{"54", "183"}},  // purple
	domain.CategoryUserPromptSubmit:  {light: BadgeColors{"147", "17"}, dark: BadgeColors{"17", "147"}},  // indigo
	domain.CategoryPermissionRequest: {light: BadgeColors{"229", "94"}, dark: BadgeColors{"94", "229"}},  // yellow
	domain.CategorySubagentStop:      {light: BadgeColors{"218", "89"}, dark: BadgeColors{"89", "218"}},  // pink
	domain.CategoryPreCompact:        {light: BadgeColors{"159", "23"}, dark: BadgeColors{"23", "159"}},  // cyan
	domain.CategoryStop:              {light: BadgeColors{"224", "88"}, dark: BadgeColors{"88", "224"}},  // red
	domain.CategoryNotification:      {light: BadgeColors{"223", "130"}, dark: BadgeColors{"130", "223"}}, // amber
	domain.CategoryUtility:           {light: BadgeColors{"254", "236"}, dark: BadgeColors{"238", "254"}}, // gray
	domain.CategoryWorkflow:          {light: BadgeColors{"216", "130"}, dark: BadgeColors{"166", "230"}}, // orange
	domain.CategoryOther:             {light: BadgeColors{"253", "237"}, dark: BadgeColors{"237", "253"}}, // slate
}

// CategoryColor returns the badge colors for a category.
// Categories outside the known set use the Other colors.
func CategoryColor(category domain.Category, dark bool) BadgeColors {
	pair, ok := categoryColors[category]
	if !ok {
		pair = categoryColors[domain.CategoryOther]
	}
	if dark {
		return pair.dark
	}
	return pair.light
}
