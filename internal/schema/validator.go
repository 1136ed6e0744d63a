// Package schema validates sites.config.json before generation runs, so a
// malformed config fails with field-level messages instead of a partial
// write.
package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const sitesConfigSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sites"],
  "properties": {
    "global": {
      "type": "object",
      "properties": {
        "strict_mode": {"type": "boolean"},
        "default_bedrooms": {"type": "integer", "minimum": 0},
        "default_bathrooms": {"type": "number", "minimum": 0},
        "default_sqft": {"type": "integer", "minimum": 0},
        "max_misc_docs": {"type": "integer", "minimum": 0}
      }
    },
    "sites": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["slug", "name"],
        "properties": {
          "slug": {"type": "string", "minLength": 1, "pattern": "^[a-z0-9][a-z0-9-]*$"},
          "name": {"type": "string", "minLength": 1},
          "aliases": {"type": "array", "items": {"type": "string"}},
          "drive_folder_id": {"type": "string"},
          "require_public_subfolder": {"type": "boolean"},
          "lot_count": {"type": "integer", "minimum": 0},
          "lot_pages": {
            "type": "object",
            "additionalProperties": {"type": "integer", "minimum": 1}
          },
          "plan_details": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "properties": {
                "bedrooms": {"type": "integer", "minimum": 0},
                "bathrooms": {"type": "number", "minimum": 0},
                "sqft": {"type": "integer", "minimum": 0},
                "stories": {"type": "integer", "minimum": 0},
                "garage_sf": {"type": "integer", "minimum": 0},
                "porch_sf": {"type": "integer", "minimum": 0},
                "patio_sf": {"type": "integer", "minimum": 0}
              }
            }
          },
          "lot_details": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "properties": {
                "apn": {"type": "string"},
                "address": {"type": "string"},
                "status": {"type": "string"},
                "size": {"type": "string"},
                "has_title_report": {"type": "boolean"},
                "has_grading": {"type": "boolean"},
                "has_plan_assignment": {"type": "boolean"},
                "doc_refs": {
                  "type": "object",
                  "additionalProperties": {"type": "string"}
                }
              }
            }
          },
          "lot_requirements": {
            "type": "object",
            "properties": {
              "show_missing": {"type": "boolean"},
              "hide_incomplete": {"type": "boolean"},
              "show_status_in_size": {"type": "boolean"},
              "required_docs": {
                "type": "array",
                "items": {
                  "enum": ["title_report", "grading", "plan_assignment", "platmap", "entitlements"]
                }
              }
            }
          },
          "document_overrides": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "hide": {"type": "boolean"}
              }
            }
          },
          "overrides": {
            "type": "object",
            "additionalProperties": {"type": "string"}
          },
          "hide_empty_sections": {"type": "boolean"}
        }
      }
    }
  }
}`

// Issue is one schema violation, located by JSON path.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" || i.Path == "(root)" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Result reports the outcome of validating a config document.
type Result struct {
	Valid  bool
	Issues []Issue
}

// ValidateSitesConfig checks raw sites.config.json bytes against the
// embedded schema. A schema violation is reported in the Result, not as
// an error; errors mean the document could not be checked at all.
func ValidateSitesConfig(data []byte) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(sitesConfigSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	outcome, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	result := &Result{Valid: outcome.Valid()}
	for _, issue := range outcome.Errors() {
		result.Issues = append(result.Issues, Issue{
			Path:    issue.Field(),
			Message: issue.Description(),
		})
	}
	return result, nil
}
