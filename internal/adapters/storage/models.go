package storage

import "time"

// HookModel is the GORM model for the hooks table.
// Nested catalog sections are stored as JSON text columns.
type HookModel struct {
	AuthorJSON        string `gorm:"column:author;not null;default:'{}'"`
	Category          string `gorm:"not null;index:idx_category"`
	CompatibilityJSON string `gorm:"column:compatibility;not null;default:'{}'"`
	CreatedAt         time.Time
	Description       string `gorm:"not null;default:''"`
	FullDescription   string `gorm:"not null;default:''"`
	GitHubJSON        string `gorm:"column:github;not null;default:'{}'"`
	HookCreatedAt     string `gorm:"not null;default:''"`
	HookUpdatedAt     string `gorm:"not null;default:''"`
	ID                string `gorm:"primaryKey"`
	LastUpdated       string `gorm:"not null;default:''"`
	MetadataJSON      string `gorm:"column:metadata;not null;default:'{}'"`
	Name              string `gorm:"not null"`
	Position          int    `gorm:"not null;default:0;index:idx_position"`
	PublishedAt       string `gorm:"not null;default:''"`
	QualityJSON       string `gorm:"column:quality;not null;default:'{}'"`
	RepoName          string `gorm:"not null;default:''"`
	RepoOwner         string `gorm:"not null;default:''"`
	RepoURL           string `gorm:"not null;default:''"`
	Stars             int    `gorm:"not null;default:0"`
	StatsJSON         string `gorm:"column:stats;not null;default:'{}'"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (HookModel) TableName() string { return "hooks" }

// CatalogImportModel records each `catalog import` run
type CatalogImportModel struct {
	CreatedAt  time.Time
	HookCount  int       `gorm:"not null;default:0"`
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ImportedAt time.Time `gorm:"not null;index:idx_imported_at"`
	Source     string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (CatalogImportModel) TableName() string { return "catalog_imports" }
