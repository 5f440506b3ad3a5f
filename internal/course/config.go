package course

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/question"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled course-file schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			compileErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://course.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// questionConfig mirrors question.Question with an optional active flag;
// a question is active unless the file says otherwise.
type questionConfig struct {
	ID             string           `json:"id"`
	TopicID        string           `json:"topic_id"`
	Difficulty     decimal.Decimal  `json:"difficulty"`
	Discrimination *decimal.Decimal `json:"discrimination"`
	Active         *bool            `json:"active"`
}

type courseFile struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	PassingScore decimal.Decimal  `json:"passing_score"`
	Topics       []Topic          `json:"topics"`
	Questions    []questionConfig `json:"questions"`
}

// Parse validates raw course-file JSON against the embedded schema, then
// enforces the configuration invariants (weight sum, unique topics) and
// builds the question bank. Every question must reference a known topic.
func Parse(data []byte) (*Course, *question.StaticBank, error) {
	schema, err := compiled()
	if err != nil {
		return nil, nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse course file: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, nil, fmt.Errorf("course file schema: %w", err)
	}

	var cf courseFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, nil, fmt.Errorf("decode course file: %w", err)
	}

	c := &Course{
		ID:           cf.ID,
		Name:         cf.Name,
		PassingScore: cf.PassingScore,
		Topics:       cf.Topics,
	}
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	questions := make([]question.Question, 0, len(cf.Questions))
	for _, qc := range cf.Questions {
		if _, ok := c.Topic(qc.TopicID); !ok {
			return nil, nil, fmt.Errorf("question %q: unknown topic %q", qc.ID, qc.TopicID)
		}
		active := true
		if qc.Active != nil {
			active = *qc.Active
		}
		questions = append(questions, question.Question{
			ID:             qc.ID,
			TopicID:        qc.TopicID,
			Difficulty:     qc.Difficulty,
			Discrimination: qc.Discrimination,
			Active:         active,
		})
	}

	bank, err := question.NewStaticBank(questions)
	if err != nil {
		return nil, nil, err
	}
	return c, bank, nil
}

// Load reads and parses a course file from disk.
func Load(path string) (*Course, *question.StaticBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read course file: %w", err)
	}
	return Parse(data)
}
