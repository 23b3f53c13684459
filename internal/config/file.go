package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/errors"
)

// LoadFile merges the YAML settings in filename into c. Keys that are absent
// keep their current values; unknown keys are an error.
func (c *Config) LoadFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("'%s': %w", filename, err)
	}
	if err := c.load(b); err != nil {
		return fmt.Errorf("'%s': %w", filename, err)
	}
	return nil
}

func (c *Config) load(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	return nil
}

// WriteYAML writes the file form of c, suitable for LoadFile.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// UnmarshalYAML reads an output format by name.
func (f *OutputFormat) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseOutputFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML writes an output format by name.
func (f OutputFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// UnmarshalYAML reads a tag form by name.
func (f *TagOutputForm) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTagOutputForm(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML writes a tag form by name.
func (f TagOutputForm) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}
