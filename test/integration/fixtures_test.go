package integration_test

const teamCatalogJSON = `{
  "hooks": [
    {
      "id": "a1",
      "name": "format-go",
      "category": "PostToolUse",
      "description": "Runs gofmt after every edit",
      "repoUrl": "https://github.com/gophers/format-go",
      "repoOwner": "gophers",
      "repoName": "format-go",
      "github": {"stars": 12},
      "metadata": {"version": "0.3.0", "license": "MIT", "tags": ["go", "formatting"]}
    },
    {
      "id": "a2",
      "name": "block-force-push",
      "category": "PreToolUse",
      "description": "Stops git push --force on protected branches",
      "repoUrl": "https://github.com/safety/guard",
      "repoOwner": "safety",
      "repoName": "guard"
    },
    {
      "id": "a3",
      "name": "lint-on-save",
      "category": "PostToolUse",
      "description": "Runs golangci-lint on changed packages",
      "repoUrl": "https://github.com/gophers/lint",
      "repoOwner": "gophers",
      "repoName": "lint"
    }
  ]
}`

const extraCatalogTOML = `
[[hooks]]
id = "a3"
name = "shadowed-lint"
category = "PostToolUse"
description = "Loses to the earlier source"
repo_url = "https://github.com/other/lint"

[[hooks]]
id = "b1"
name = "session-banner"
category = "SessionStart"
description = "Prints the branch and open TODOs at session start"
repo_url = "https://github.com/banners/session-banner"
repo_owner = "banners"
repo_name = "session-banner"
`

const missingIDCatalogJSON = `{"hooks": [{"name": "anonymous", "category": "Stop"}]}`

const duplicateIDCatalogJSON = `{"hooks": [
  {"id": "d1", "name": "first", "category": "Stop"},
  {"id": "d1", "name": "second", "category": "Stop"}
]}`
