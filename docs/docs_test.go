package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"

	"clinic-assistant/docs"
)

func TestSwaggerInfo_ReadDoc(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if parsed.Swagger != "2.0" {
		t.Errorf("swagger = %q, want 2.0", parsed.Swagger)
	}
	for _, path := range []string{"/api/v1/tasks", "/api/v1/assistant/messages"} {
		if _, ok := parsed.Paths[path]; !ok {
			t.Errorf("missing path %s", path)
		}
	}
}
