package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolveKnownID(t *testing.T) {
	registry := NewRegistry(nil)

	for _, id := range []string{
		"modern", "classic", "minimal", "corporate",
		"simple_logo", "formal_letterhead", "modern_minimal", "extrape_invoice",
	} {
		renderer := registry.Resolve(id)
		require.NotNil(t, renderer, "renderer for %s", id)
		assert.Equal(t, id, renderer.ID())
	}
}

func TestRegistryResolveUnknownFallsBackToDefault(t *testing.T) {
	registry := NewRegistry(nil)

	renderer := registry.Resolve("does_not_exist")
	require.NotNil(t, renderer)
	assert.Equal(t, DefaultTemplateID, renderer.ID())

	renderer = registry.Resolve("")
	require.NotNil(t, renderer)
	assert.Equal(t, DefaultTemplateID, renderer.ID())
}

func TestRegistryCatalog(t *testing.T) {
	registry := NewRegistry(nil)

	catalog := registry.Catalog()
	require.Len(t, catalog, 8)

	ids := make([]string, 0, len(catalog))
	for _, info := range catalog {
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.Colors.Primary)
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{
		"modern", "classic", "minimal", "corporate",
		"simple_logo", "formal_letterhead", "modern_minimal", "extrape_invoice",
	}, ids)
}
