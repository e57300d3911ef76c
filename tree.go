package main

import (
	"encoding/json"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// DeclarationNode is one node of the declaration tree: the root module, a
// plugin interface, a method, a property or a referenced structural type.
type DeclarationNode struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Kind       int                `json:"kind,omitempty"`
	KindString string             `json:"kindString,omitempty"`
	Flags      Flags              `json:"flags"`
	Comment    *Comment           `json:"comment,omitempty"`
	Children   []*DeclarationNode `json:"children,omitempty"`
	Signatures []*Signature       `json:"signatures,omitempty"`
	Type       *TypeRef           `json:"type,omitempty"`
}

// Flags holds the attribute set of a declaration or parameter.
type Flags struct {
	IsOptional bool `json:"isOptional,omitempty"`
	IsExported bool `json:"isExported,omitempty"`
}

// Comment is the extracted doc comment of a declaration.
type Comment struct {
	ShortText string `json:"shortText,omitempty"`
	Text      string `json:"text,omitempty"`
}

// Full returns the long comment text, or the short text when no long text
// was extracted.
func (c *Comment) Full() string {
	if c == nil {
		return ""
	}
	if c.Text != "" {
		return c.Text
	}
	return c.ShortText
}

// Short returns the one-line summary, if any.
func (c *Comment) Short() string {
	if c == nil {
		return ""
	}
	return c.ShortText
}

// TypeRef describes a type at a use site.
type TypeRef struct {
	Type          string     `json:"type"`
	ID            *int       `json:"id,omitempty"`
	Name          string     `json:"name"`
	TypeArguments []*TypeRef `json:"typeArguments,omitempty"`
}

// Signature is one call signature of a callable member.
type Signature struct {
	Name       string       `json:"name,omitempty"`
	Comment    *Comment     `json:"comment,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
	Type       *TypeRef     `json:"type,omitempty"`
}

// Parameter is one formal parameter of a signature.
type Parameter struct {
	Name    string   `json:"name"`
	Flags   Flags    `json:"flags"`
	Comment *Comment `json:"comment,omitempty"`
	Type    *TypeRef `json:"type,omitempty"`
}

func decodeTree(data []byte) (*DeclarationNode, error) {
	var root DeclarationNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Errorf("decode declaration tree: %w", err)
	}
	return &root, nil
}

func loadTree(fs afero.Fs, path string) (*DeclarationNode, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("read declaration tree: %w", err)
	}
	root, err := decodeTree(data)
	if err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}
	return root, nil
}
