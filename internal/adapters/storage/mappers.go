package storage

import (
	"encoding/json"
	"fmt"

	"github.com/hookhub/hookhub/internal/domain"
)

// domainToHookModel converts a hook to its row at the given position
func domainToHookModel(hook domain.Hook, position int) (HookModel, error) {
	model := HookModel{
		Category:        string(hook.Category),
		Description:     hook.Description,
		FullDescription: hook.FullDescription,
		HookCreatedAt:   hook.CreatedAt,
		HookUpdatedAt:   hook.UpdatedAt,
		ID:              hook.ID,
		LastUpdated:     hook.LastUpdated,
		Name:            hook.Name,
		Position:        position,
		PublishedAt:     hook.PublishedAt,
		RepoName:        hook.RepoName,
		RepoOwner:       hook.RepoOwner,
		RepoURL:         hook.RepoURL,
		Stars:           hook.Stars,
	}

	columns := []struct {
		dst   *string
		name  string
		value any
	}{
		{&model.AuthorJSON, "author", hook.Author},
		{&model.CompatibilityJSON, "compatibility", hook.Compatibility},
		{&model.GitHubJSON, "github", hook.GitHub},
		{&model.MetadataJSON, "metadata", hook.Metadata},
		{&model.QualityJSON, "quality", hook.Quality},
		{&model.StatsJSON, "stats", hook.Stats},
	}
	for _, c := range columns {
		data, err := json.Marshal(c.value)
		if err != nil {
			return HookModel{}, fmt.Errorf("failed to encode %s of hook %s: %w", c.name, hook.ID, err)
		}
		*c.dst = string(data)
	}

	return model, nil
}

// hookModelToDomain converts a row back to a hook
func hookModelToDomain(model HookModel) (domain.Hook, error) {
	hook := domain.Hook{
		Category:        domain.Category(model.Category),
		CreatedAt:       model.HookCreatedAt,
		Description:     model.Description,
		FullDescription: model.FullDescription,
		ID:              model.ID,
		LastUpdated:     model.LastUpdated,
		Name:            model.Name,
		PublishedAt:     model.PublishedAt,
		RepoName:        model.RepoName,
		RepoOwner:       model.RepoOwner,
		RepoURL:         model.RepoURL,
		Stars:           model.Stars,
		UpdatedAt:       model.HookUpdatedAt,
	}

	columns := []struct {
		dst  any
		name string
		raw  string
	}{
		{&hook.Author, "author", model.AuthorJSON},
		{&hook.Compatibility, "compatibility", model.CompatibilityJSON},
		{&hook.GitHub, "github", model.GitHubJSON},
		{&hook.Metadata, "metadata", model.MetadataJSON},
		{&hook.Quality, "quality", model.QualityJSON},
		{&hook.Stats, "stats", model.StatsJSON},
	}
	for _, c := range columns {
		if c.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(c.raw), c.dst); err != nil {
			return domain.Hook{}, fmt.Errorf("failed to decode %s of hook %s: %w", c.name, model.ID, err)
		}
	}

	return hook, nil
}
