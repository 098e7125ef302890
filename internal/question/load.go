package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk question set schema, loaded from JSON or YAML.
type File struct {
	Version   int            `json:"version" yaml:"version"`
	Questions []FileQuestion `json:"questions" yaml:"questions"`
}

// FileQuestion is a single question entry in a question file.
type FileQuestion struct {
	Type           string   `json:"type" yaml:"type"`
	Prompt         string   `json:"question" yaml:"question"`
	Options        []string `json:"options,omitempty" yaml:"options,omitempty"`
	Answer         *bool    `json:"answer,omitempty" yaml:"answer,omitempty"`
	Correct        string   `json:"correct,omitempty" yaml:"correct,omitempty"`
	CorrectAnswers []string `json:"correct_answers,omitempty" yaml:"correct_answers,omitempty"`
}

// LoadSet reads, parses, and validates a question file.
func LoadSet(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	file, err := parseFile(data, path)
	if err != nil {
		return nil, err
	}
	return FromFile(file)
}

// FromFile converts a parsed question file into a validated question set.
func FromFile(file File) ([]Question, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}

	questions := make([]Question, 0, len(file.Questions))
	for i, entry := range file.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q, ok := convertEntry(collector, prefix, entry)
		if ok {
			questions = append(questions, q)
		}
	}
	if len(collector.issues) == 0 {
		validateInto(collector, questions)
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}

// ToFile converts a question set into its file representation.
func ToFile(questions []Question) File {
	file := File{Version: 1, Questions: make([]FileQuestion, 0, len(questions))}
	for _, q := range questions {
		entry := FileQuestion{Type: q.Kind().String(), Prompt: q.Text()}
		switch typed := q.(type) {
		case TrueFalse:
			answer := typed.Correct
			entry.Answer = &answer
		case SingleChoice:
			entry.Options = typed.Options
			entry.Correct = typed.Correct
		case MultiChoice:
			entry.Options = typed.Options
			entry.CorrectAnswers = typed.Correct
		}
		file.Questions = append(file.Questions, entry)
	}
	return file
}

func convertEntry(collector *issueCollector, prefix string, entry FileQuestion) (Question, bool) {
	prompt := strings.TrimSpace(entry.Prompt)
	options := normalizeStringSlice(entry.Options)
	switch strings.ToLower(strings.TrimSpace(entry.Type)) {
	case KindTrueFalse.String():
		if entry.Answer == nil {
			collector.add(prefix+".answer", "is required")
			return nil, false
		}
		return TrueFalse{Prompt: prompt, Correct: *entry.Answer}, true
	case KindSingleChoice.String():
		return SingleChoice{Prompt: prompt, Options: options, Correct: strings.TrimSpace(entry.Correct)}, true
	case KindMultiChoice.String():
		return MultiChoice{Prompt: prompt, Options: options, Correct: normalizeStringSlice(entry.CorrectAnswers)}, true
	case KindFreeText.String():
		return FreeText{Prompt: prompt}, true
	case "":
		collector.add(prefix+".type", "is required")
	default:
		collector.add(prefix+".type", fmt.Sprintf("unknown type %q", entry.Type))
	}
	return nil, false
}

func parseFile(data []byte, path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONFile(data)
	}
	return parseYAMLFile(data)
}

func parseJSONFile(data []byte) (File, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAMLFile(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}
