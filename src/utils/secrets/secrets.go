package secrets

import (
	"fmt"
	"os"
	"strings"

	aws_handler "github.com/venoajie/trading-web-project/src/utils/aws"
)

// Reader resolves a secret by name. For files the name is a path, for AWS it
// is the secret id.
type Reader interface {
	Read(name string) (string, error)
}

type FileReader struct{}

func NewFileReader() *FileReader {
	return &FileReader{}
}

// Read returns the file content with surrounding whitespace removed.
func (FileReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading secret file %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

type AWSReader struct {
	SecretManager aws_handler.SecretGetter
}

func NewAWSReader(region string) (*AWSReader, error) {
	handler, err := aws_handler.NewAWSHandler(region)
	if err != nil {
		return nil, err
	}
	return &AWSReader{SecretManager: handler.SecretManager}, nil
}

func (r *AWSReader) Read(secretID string) (string, error) {
	value, err := r.SecretManager.GetSecretValue(secretID)
	if err != nil {
		return "", fmt.Errorf("reading secret %s from secrets manager: %w", secretID, err)
	}
	return strings.TrimSpace(value), nil
}

// StaticReader serves secrets from memory.
type StaticReader map[string]string

func (s StaticReader) Read(name string) (string, error) {
	value, ok := s[name]
	if !ok {
		return "", fmt.Errorf("secret %s: %w", name, os.ErrNotExist)
	}
	return value, nil
}
