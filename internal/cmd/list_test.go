package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/services"
)

func TestCheckCategory(t *testing.T) {
	svc := services.NewCatalogService([]domain.Hook{
		{ID: "1", Name: "fmt", Category: domain.CategoryPostToolUse},
		{ID: "2", Name: "team", Category: domain.Category("TeamOnly")},
	})

	tests := []struct {
		name     string
		category string
		wantErr  bool
	}{
		{name: "all", category: "All"},
		{name: "present in catalog", category: "PostToolUse"},
		{name: "unknown but present in catalog", category: "TeamOnly"},
		{name: "known with no hooks", category: "Stop"},
		{name: "wrong case", category: "posttooluse", wantErr: true},
		{name: "made up", category: "Nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCategory(svc, tt.category)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown category")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckCategory_KnownEmptyCategoryFiltersToNothing(t *testing.T) {
	svc := services.NewCatalogService([]domain.Hook{{ID: "1", Name: "fmt", Category: domain.CategoryPostToolUse}})

	assert.NoError(t, checkCategory(svc, string(domain.CategoryStop)))
	assert.Empty(t, svc.Filter(string(domain.CategoryStop), ""))
	assert.Equal(t, "0 hooks found", domain.ResultCountMessage(0))
}
