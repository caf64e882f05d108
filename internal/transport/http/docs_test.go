package http

import (
	"testing"

	"github.com/go-openapi/loads"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocument(t *testing.T) {
	doc, err := loads.Spec("../../../swagger.yaml")
	require.NoError(t, err)

	err = validate.Spec(doc, strfmt.Default)
	require.NoError(t, err)

	for _, path := range []string{"/api/products", "/api/products/{id}", "/api/currencies", "/api/pages"} {
		_, ok := doc.Spec().Paths.Paths[path]
		require.True(t, ok, "missing path %s", path)
	}
}
