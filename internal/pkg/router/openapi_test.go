package router

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The published OpenAPI document must stay loadable and internally valid,
// and keep describing the routes this package installs.
func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, "NadaMusik API", doc.Info.Title)

	for _, path := range []string{
		"/register",
		"/login",
		"/courses",
		"/api/v1/enrollments",
		"/api/v1/bills/{id}/pay",
		"/api/v1/bills/{id}/status",
		"/admin/api/billing/generate",
		"/admin/api/billing/sweep",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
