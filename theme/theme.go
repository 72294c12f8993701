package theme

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is one named template: markup plus its stylesheet.
type Theme struct {
	Name        string
	Description string
	Markup      string
	Styles      string
}

// frontmatter is the YAML header of a theme file.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Styles      string `yaml:"styles,omitempty"`
}

// ParseFile reads a theme file: YAML frontmatter between --- delimiters,
// then the markup body. A styles reference in the frontmatter is resolved
// relative to the theme file and loaded into Theme.Styles.
func ParseFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	th, stylesRef, err := parseContent(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	if stylesRef != "" {
		css, err := os.ReadFile(filepath.Join(filepath.Dir(path), stylesRef))
		if err != nil {
			return nil, fmt.Errorf("read styles for theme %s: %w", th.Name, err)
		}
		th.Styles = string(css)
	}
	return th, nil
}

// parseContent splits frontmatter from the markup body and decodes it.
func parseContent(data []byte) (*Theme, string, error) {
	if !bytes.HasPrefix(data, []byte("---")) {
		return nil, "", errors.New("theme file must start with YAML frontmatter (---)")
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	var headerLines []string
	var bodyLines []string
	inHeader := false
	foundEnd := false

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 && line == "---" {
			inHeader = true
			continue
		}
		if inHeader && line == "---" {
			inHeader = false
			foundEnd = true
			continue
		}
		if inHeader {
			headerLines = append(headerLines, line)
		} else if foundEnd {
			bodyLines = append(bodyLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("scan content: %w", err)
	}
	if !foundEnd {
		return nil, "", errors.New("frontmatter not closed (missing ---)")
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(strings.Join(headerLines, "\n")), &fm); err != nil {
		return nil, "", fmt.Errorf("parse frontmatter: %w", err)
	}
	if fm.Name == "" {
		return nil, "", errors.New("theme name is required")
	}

	return &Theme{
		Name:        fm.Name,
		Description: fm.Description,
		Markup:      strings.TrimSpace(strings.Join(bodyLines, "\n")),
	}, fm.Styles, nil
}
