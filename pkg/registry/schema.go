// pkg/registry/schema.go
package registry

// catalogSchema validates the reference catalog document shape before it is
// loaded into a store. Scoring-critical fields are required; descriptive
// fields stay optional so partial catalogs can ship.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "careers"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "lastUpdated": {"type": "string"},
    "careers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "category"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "difficulty": {"type": "integer", "minimum": 1, "maximum": 10},
          "automationRisk": {"type": "number", "minimum": 0, "maximum": 1},
          "jobGrowthRate": {"type": "number"},
          "requiredSkills": {"type": "array", "items": {"type": "string"}},
          "traitsRequired": {
            "type": "object",
            "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
          },
          "personalityFit": {
            "type": "array",
            "items": {"type": "string", "pattern": "^[EI][SN][TF][JP]$"}
          },
          "subjects": {"type": "array", "items": {"type": "string"}},
          "education": {"type": "string"},
          "salary": {
            "type": "object",
            "additionalProperties": {
              "type": "object",
              "additionalProperties": {"type": "integer", "minimum": 0}
            }
          }
        }
      }
    },
    "colleges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "location": {"type": "string"},
          "country": {"type": "string"},
          "feesPerYear": {
            "type": "object",
            "additionalProperties": {"type": "number", "minimum": 0}
          },
          "ranking": {"type": "integer", "minimum": 0},
          "placementRate": {"type": "number", "minimum": 0, "maximum": 1},
          "courses": {"type": "array", "items": {"type": "string"}},
          "scholarships": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "mbtiTypes": {
      "type": "object",
      "propertyNames": {"pattern": "^[EI][SN][TF][JP]$"},
      "additionalProperties": {
        "type": "object",
        "properties": {
          "description": {"type": "string"},
          "strengths": {"type": "array", "items": {"type": "string"}},
          "careers": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "courses": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "provider": {"type": "string"},
          "level": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
          "skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`
